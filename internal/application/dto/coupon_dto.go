package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCouponRequest alta de cupón desde el dashboard.
type CreateCouponRequest struct {
	Code              string           `json:"code"`
	DiscountType      string           `json:"discountType"` // percentage | fixed
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
	ValidFrom         *time.Time       `json:"validFrom,omitempty"`
	ValidUntil        *time.Time       `json:"validUntil,omitempty"`
	MaxUses           *int             `json:"maxUses,omitempty"`
}

// CouponDTO cupón en respuestas de listado.
type CouponDTO struct {
	ID                string           `json:"id"`
	Code              string           `json:"code"`
	DiscountType      string           `json:"discountType"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
	ValidFrom         *time.Time       `json:"validFrom,omitempty"`
	ValidUntil        *time.Time       `json:"validUntil,omitempty"`
	MaxUses           *int             `json:"maxUses,omitempty"`
	CurrentUses       int              `json:"currentUses"`
	Active            bool             `json:"active"`
}

// ValidateCouponRequest consulta de validez desde el dashboard. El carrito
// público no llama este endpoint: su cupón se valida al crear el pedido.
type ValidateCouponRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ValidateCouponResponse resultado de la validación. La invalidez es un
// resultado normal: Valid=false con Error descriptivo, nunca un status 4xx/5xx.
type ValidateCouponResponse struct {
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Error          string          `json:"error,omitempty"`
}
