package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient insumo de cocina de un restaurante. CurrentStock es una
// proyección cacheada: siempre debe ser reconstruible como la suma de los
// deltas de sus StockMovement. Solo los procedimientos atómicos del lado de
// la base lo escriben (ver migrations/0001_core.sql).
type Ingredient struct {
	ID            string
	TenantID      string
	Name          string
	Unit          string // kg, l, unidad, ...
	CurrentStock  decimal.Decimal
	MinStockAlert decimal.Decimal
	CostPerUnit   decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowAlert indica si el insumo está en o por debajo de su umbral de alerta.
func (i *Ingredient) BelowAlert() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStockAlert)
}
