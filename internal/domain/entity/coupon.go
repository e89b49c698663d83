package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de cupón.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// NormalizeCouponCode normaliza un código de cupón: trim + mayúsculas.
// Se aplica siempre antes de buscar o persistir.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Coupon cupón de descuento de un restaurante. Code es único por tenant
// (normalizado). CurrentUses solo se incrementa, nunca se decrementa.
type Coupon struct {
	ID                string
	TenantID          string
	Code              string
	DiscountType      string // percentage | fixed
	DiscountValue     decimal.Decimal
	MinOrderAmount    *decimal.Decimal
	MaxDiscountAmount *decimal.Decimal // tope para descuentos porcentuales
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	MaxUses           *int
	CurrentUses       int
	Active            bool
	CreatedAt         time.Time
}
