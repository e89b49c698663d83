package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.CouponRepository = (*CouponRepo)(nil)

// CouponRepo persistencia de cupones sobre PostgreSQL.
type CouponRepo struct {
	q Querier
}

// NewCouponRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCouponRepository(q Querier) *CouponRepo {
	return &CouponRepo{q: q}
}

const couponColumns = `id, tenant_id, code, discount_type, discount_value, min_order_amount,
	max_discount_amount, valid_from, valid_until, max_uses, current_uses, active, created_at`

// GetByCode busca por tenant + código normalizado + flag activo.
// Devuelve nil si no hay coincidencia (el caller no distingue inexistente de inactivo).
func (r *CouponRepo) GetByCode(ctx context.Context, tenantID, code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + `
		FROM coupons WHERE tenant_id = $1 AND code = $2 AND active`
	c, err := scanCoupon(r.q.QueryRow(ctx, query, tenantID, code))
	if err != nil {
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}
	return c, nil
}

// Create inserta un cupón. Un código duplicado dentro del tenant responde CONFLICT.
func (r *CouponRepo) Create(ctx context.Context, c *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, tenant_id, code, discount_type, discount_value, min_order_amount,
			max_discount_amount, valid_from, valid_until, max_uses, current_uses, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.TenantID, c.Code, c.DiscountType, c.DiscountValue, c.MinOrderAmount,
		c.MaxDiscountAmount, c.ValidFrom, c.ValidUntil, c.MaxUses, c.CurrentUses, c.Active, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("código de cupón duplicado")
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// List devuelve los cupones del tenant, más recientes primero.
func (r *CouponRepo) List(ctx context.Context, tenantID string) ([]*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var list []*entity.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// IncrementUsage suma 1 a current_uses con un UPDATE relativo (atómico en el
// servidor, sin read-modify-write).
func (r *CouponRepo) IncrementUsage(ctx context.Context, couponID string) error {
	query := `UPDATE coupons SET current_uses = current_uses + 1 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, couponID)
	if err != nil {
		return fmt.Errorf("increment coupon usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("increment coupon usage: cupón %s no existe", couponID)
	}
	return nil
}

func scanCoupon(row pgx.Row) (*entity.Coupon, error) {
	var c entity.Coupon
	err := row.Scan(
		&c.ID, &c.TenantID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderAmount,
		&c.MaxDiscountAmount, &c.ValidFrom, &c.ValidUntil, &c.MaxUses, &c.CurrentUses, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
