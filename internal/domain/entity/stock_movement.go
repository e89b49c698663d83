package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeOpening      = "opening"       // saldo inicial
	MovementTypeManualAdd    = "manual_add"    // entrada manual
	MovementTypeManualRemove = "manual_remove" // salida manual
	MovementTypeDestock      = "destock"       // descuento por pedido confirmado
	MovementTypeWaste        = "waste"         // merma
)

// ValidMovementType indica si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeOpening, MovementTypeManualAdd, MovementTypeManualRemove,
		MovementTypeDestock, MovementTypeWaste:
		return true
	}
	return false
}

// SignedQuantity aplica el signo que corresponde al tipo de movimiento sobre
// una magnitud positiva: opening y manual_add suman; todo lo demás resta.
func SignedQuantity(movementType string, magnitude decimal.Decimal) decimal.Decimal {
	switch movementType {
	case MovementTypeOpening, MovementTypeManualAdd:
		return magnitude
	default:
		return magnitude.Neg()
	}
}

// StockMovement registro inmutable (append-only) del libro de inventario.
// Quantity lleva el signo ya aplicado. La suma de los movimientos de un
// insumo reproduce exactamente su current_stock.
type StockMovement struct {
	ID           string
	TenantID     string
	IngredientID string
	Quantity     decimal.Decimal // delta firmado
	Type         string
	Notes        *string
	CreatedBy    *string
	CreatedAt    time.Time
}
