package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
)

var oneHundred = decimal.NewFromInt(100)

// ValidationResult resultado de validar un cupón. La invalidez es un resultado
// normal (Valid=false + Reason), nunca un error: solo las fallas de storage
// retornan error.
type ValidationResult struct {
	Valid          bool
	DiscountAmount decimal.Decimal
	Coupon         *entity.Coupon
	Reason         string
}

// UseCase valida, administra e incrementa el uso de cupones. Validate nunca
// muta estado; el incremento de uso es una operación aparte.
type UseCase struct {
	coupons repository.CouponRepository
	log     *logger.Logger
	// now inyectable para tests de ventana de validez.
	now func() time.Time
}

// NewUseCase construye el caso de uso de cupones.
func NewUseCase(coupons repository.CouponRepository, log *logger.Logger) *UseCase {
	return &UseCase{coupons: coupons, log: log, now: time.Now}
}

// Validate decide la validez de un código para un tenant y subtotal, y calcula
// el monto de descuento. El código se normaliza (trim + mayúsculas) antes de
// buscar. Un código inexistente responde el mismo mensaje genérico que uno de
// otro tenant: no se filtra si el código existe en otra parte.
func (uc *UseCase) Validate(ctx context.Context, code, tenantID string, subtotal decimal.Decimal) (*ValidationResult, error) {
	normalized := entity.NormalizeCouponCode(code)
	if normalized == "" {
		return invalid("código de cupón inválido"), nil
	}

	c, err := uc.coupons.GetByCode(ctx, tenantID, normalized)
	if err != nil {
		return nil, domain.Internal("consultar cupón", err)
	}
	if c == nil {
		return invalid("código de cupón inválido"), nil
	}

	now := uc.now()
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return invalid("el cupón aún no es válido"), nil
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return invalid("el cupón ha expirado"), nil
	}
	if c.MaxUses != nil && c.CurrentUses >= *c.MaxUses {
		return invalid("el cupón alcanzó su límite de usos"), nil
	}
	if c.MinOrderAmount != nil && subtotal.LessThan(*c.MinOrderAmount) {
		return invalid(fmt.Sprintf("el pedido mínimo para este cupón es %s", c.MinOrderAmount.StringFixed(2))), nil
	}

	discount := computeDiscount(c, subtotal)
	return &ValidationResult{Valid: true, DiscountAmount: discount, Coupon: c}, nil
}

// computeDiscount calcula el descuento: fixed es el valor plano; percentage es
// subtotal×valor/100 con tope en max_discount_amount. En ambos casos el
// descuento final se capa al subtotal (nunca descuenta más de lo que vale el
// pedido) y se redondea a 2 decimales.
func computeDiscount(c *entity.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case entity.DiscountTypeFixed:
		discount = c.DiscountValue
	case entity.DiscountTypePercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(oneHundred)
		if c.MaxDiscountAmount != nil && discount.GreaterThan(*c.MaxDiscountAmount) {
			discount = *c.MaxDiscountAmount
		}
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return discount.Round(2)
}

func invalid(reason string) *ValidationResult {
	return &ValidationResult{Valid: false, DiscountAmount: decimal.Zero, Reason: reason}
}

// IncrementUsage suma 1 al contador de usos. Se invoca solo después de que el
// pedido que referencia el cupón quedó persistido; una falla aquí se loguea y
// se traga: jamás debe tumbar un pedido ya exitoso.
func (uc *UseCase) IncrementUsage(ctx context.Context, couponID string) {
	if err := uc.coupons.IncrementUsage(ctx, couponID); err != nil {
		uc.log.Warn().Err(err).Str("coupon_id", couponID).
			Msg("no se pudo incrementar el uso del cupón")
	}
}

// Create da de alta un cupón para el tenant. El código se persiste
// normalizado; uno duplicado dentro del tenant responde CONFLICT.
func (uc *UseCase) Create(ctx context.Context, tenantID string, in dto.CreateCouponRequest) (*dto.CouponDTO, error) {
	code := entity.NormalizeCouponCode(in.Code)
	if code == "" {
		return nil, domain.Validation("el código del cupón es obligatorio")
	}
	if in.DiscountType != entity.DiscountTypeFixed && in.DiscountType != entity.DiscountTypePercentage {
		return nil, domain.Validationf("tipo de descuento desconocido: %q", in.DiscountType)
	}
	if !in.DiscountValue.GreaterThan(decimal.Zero) {
		return nil, domain.Validation("el valor del descuento debe ser mayor que 0")
	}
	if in.DiscountType == entity.DiscountTypePercentage && in.DiscountValue.GreaterThan(oneHundred) {
		return nil, domain.Validation("un descuento porcentual no puede superar 100")
	}
	if in.ValidFrom != nil && in.ValidUntil != nil && in.ValidUntil.Before(*in.ValidFrom) {
		return nil, domain.Validation("la ventana de validez está invertida")
	}

	c := &entity.Coupon{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		Code:              code,
		DiscountType:      in.DiscountType,
		DiscountValue:     in.DiscountValue,
		MinOrderAmount:    in.MinOrderAmount,
		MaxDiscountAmount: in.MaxDiscountAmount,
		ValidFrom:         in.ValidFrom,
		ValidUntil:        in.ValidUntil,
		MaxUses:           in.MaxUses,
		Active:            true,
		CreatedAt:         uc.now(),
	}
	if err := uc.coupons.Create(ctx, c); err != nil {
		if domain.KindOf(err) == domain.KindConflict {
			return nil, domain.Conflict("ya existe un cupón con ese código")
		}
		return nil, domain.Internal("crear cupón", err)
	}
	out := toDTO(c)
	return &out, nil
}

// List devuelve los cupones del tenant.
func (uc *UseCase) List(ctx context.Context, tenantID string) ([]dto.CouponDTO, error) {
	list, err := uc.coupons.List(ctx, tenantID)
	if err != nil {
		return nil, domain.Internal("listar cupones", err)
	}
	out := make([]dto.CouponDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	return out, nil
}

func toDTO(c *entity.Coupon) dto.CouponDTO {
	return dto.CouponDTO{
		ID:                c.ID,
		Code:              c.Code,
		DiscountType:      c.DiscountType,
		DiscountValue:     c.DiscountValue,
		MinOrderAmount:    c.MinOrderAmount,
		MaxDiscountAmount: c.MaxDiscountAmount,
		ValidFrom:         c.ValidFrom,
		ValidUntil:        c.ValidUntil,
		MaxUses:           c.MaxUses,
		CurrentUses:       c.CurrentUses,
		Active:            c.Active,
	}
}
