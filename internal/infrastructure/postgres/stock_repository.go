package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo invoca los procedimientos atómicos de stock definidos en
// migrations/0001_core.sql. Cada procedimiento actualiza el contador e inserta
// los movimientos en una sola transacción del lado del servidor: son las
// únicas rutas de escritura sobre ingredients.current_stock, así dos ajustes
// concurrentes al mismo insumo nunca pierden una actualización.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// AdjustStock aplica un delta firmado e inserta el movimiento asociado.
func (r *StockRepo) AdjustStock(ctx context.Context, tenantID, ingredientID string, delta decimal.Decimal, movementType string, notes, createdBy *string) error {
	_, err := r.q.Exec(ctx,
		`SELECT adjust_ingredient_stock($1, $2, $3, $4, $5, $6)`,
		tenantID, ingredientID, delta, movementType, notes, createdBy,
	)
	if err != nil {
		return fmt.Errorf("adjust_ingredient_stock: %w", err)
	}
	return nil
}

// SetOpeningStock fija el saldo inicial del insumo.
func (r *StockRepo) SetOpeningStock(ctx context.Context, tenantID, ingredientID string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`SELECT set_opening_stock($1, $2, $3)`,
		tenantID, ingredientID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set_opening_stock: %w", err)
	}
	return nil
}

// DestockOrder descuenta los insumos de un pedido según sus recetas y devuelve
// cuántos insumos se tocaron.
func (r *StockRepo) DestockOrder(ctx context.Context, orderID, tenantID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT destock_order($1, $2)`,
		orderID, tenantID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("destock_order: %w", err)
	}
	return count, nil
}
