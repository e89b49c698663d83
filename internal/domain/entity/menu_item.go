package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un artículo de la carta. Propiedad del módulo de
// catálogo (fuera de este núcleo): aquí es solo lectura. El precio puede
// cambiar en cualquier momento desde el editor de carta, por eso el motor de
// pedidos siempre lo relee de la base y nunca de un caché.
type MenuItem struct {
	ID        string
	TenantID  string
	Name      string
	Price     decimal.Decimal
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
