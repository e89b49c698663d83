package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// CouponRepository puerto de persistencia de cupones.
type CouponRepository interface {
	// GetByCode busca por tenant + código normalizado + flag activo.
	// Devuelve nil sin error si no hay coincidencia.
	GetByCode(ctx context.Context, tenantID, code string) (*entity.Coupon, error)
	Create(ctx context.Context, coupon *entity.Coupon) error
	List(ctx context.Context, tenantID string) ([]*entity.Coupon, error)
	// IncrementUsage suma 1 a current_uses de forma atómica (UPDATE relativo,
	// no read-modify-write).
	IncrementUsage(ctx context.Context, couponID string) error
}
