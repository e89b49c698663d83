package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest ajuste manual de stock. Quantity es una magnitud
// positiva; el signo lo deriva el caso de uso del tipo de movimiento.
type AdjustStockRequest struct {
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementType string          `json:"movementType"` // manual_add | manual_remove | waste
	Notes        *string         `json:"notes,omitempty"`
}

// OpeningStockRequest fija el saldo inicial de un insumo.
type OpeningStockRequest struct {
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// StockStatusDTO insumo en o por debajo de su umbral de alerta.
type StockStatusDTO struct {
	IngredientID  string          `json:"ingredientId"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	MinStockAlert decimal.Decimal `json:"minStockAlert"`
}

// StockMovementDTO movimiento del libro en respuestas de auditoría.
type StockMovementDTO struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"` // delta firmado
	Type         string          `json:"type"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedBy    *string         `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// DestockOrderResponse resultado del descuento de insumos de un pedido.
type DestockOrderResponse struct {
	IngredientsTouched int `json:"ingredientsTouched"`
}
