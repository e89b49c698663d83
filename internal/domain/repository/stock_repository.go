package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockRepository puerto hacia los procedimientos atómicos de stock del lado
// de la base. Son las únicas rutas de escritura sancionadas sobre
// ingredients.current_stock: cada procedimiento actualiza el contador e
// inserta el movimiento en la misma unidad atómica, de modo que dos ajustes
// concurrentes al mismo insumo nunca pierden una actualización.
type StockRepository interface {
	// AdjustStock aplica un delta firmado e inserta el movimiento asociado.
	AdjustStock(ctx context.Context, tenantID, ingredientID string, delta decimal.Decimal, movementType string, notes, createdBy *string) error
	// SetOpeningStock fija el saldo inicial en una sola operación atómica
	// (nunca read-then-write: evita lost updates bajo aperturas concurrentes).
	SetOpeningStock(ctx context.Context, tenantID, ingredientID string, quantity decimal.Decimal) error
	// DestockOrder descuenta los insumos de un pedido según sus recetas y
	// devuelve cuántos insumos se tocaron. Atómico por llamada; la garantía de
	// exactamente-una-vez por pedido es responsabilidad del caller.
	DestockOrder(ctx context.Context, orderID, tenantID string) (int, error)
}
