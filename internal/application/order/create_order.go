package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/coupon"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/ordernum"
)

// CreateUseCase convierte un carrito enviado por el cliente en un pedido
// tasado y persistido: validación de precios, cupón opcional, cabecera +
// líneas con borrado compensatorio si las líneas fallan.
type CreateUseCase struct {
	tenants repository.TenantRepository
	pricing *PricingService
	coupons *coupon.UseCase
	orders  repository.OrderRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(
	tenants repository.TenantRepository,
	pricing *PricingService,
	coupons *coupon.UseCase,
	orders repository.OrderRepository,
	log *logger.Logger,
) *CreateUseCase {
	return &CreateUseCase{
		tenants: tenants,
		pricing: pricing,
		coupons: coupons,
		orders:  orders,
		log:     log,
		now:     time.Now,
	}
}

// Create valida, tasa y persiste el pedido. Devuelve id, número y total
// autoritativo. El incremento de uso del cupón ocurre después de persistir y
// nunca hace fallar el pedido.
func (uc *CreateUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	tenant, err := uc.tenants.GetBySlug(ctx, strings.TrimSpace(in.TenantSlug))
	if err != nil {
		return nil, domain.Internal("consultar restaurante", err)
	}
	if tenant == nil {
		return nil, domain.NotFound("restaurante no encontrado")
	}

	subtotal, err := uc.pricing.Validate(ctx, tenant.ID, in.Items)
	if err != nil {
		return nil, err
	}

	total := subtotal
	discount := decimal.Zero
	var couponID *string
	if in.CouponCode != "" {
		res, err := uc.coupons.Validate(ctx, in.CouponCode, tenant.ID, subtotal)
		if err != nil {
			return nil, err
		}
		if !res.Valid {
			return nil, domain.Validation(res.Reason)
		}
		discount = res.DiscountAmount
		total = subtotal.Sub(discount)
		couponID = &res.Coupon.ID
	}

	now := uc.now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		TenantID:       tenant.ID,
		OrderNumber:    ordernum.New(now.UnixMilli()),
		Status:         entity.OrderStatusPending,
		Total:          total,
		DiscountAmount: discount,
		CouponID:       couponID,
		TableNumber:    in.TableNumber,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.orders.CreateHeader(ctx, order); err != nil {
		// Nada que compensar todavía.
		return nil, domain.Internal("crear pedido", err)
	}

	items := buildItems(order.ID, in.Items, now)
	if err := uc.orders.CreateItems(ctx, items); err != nil {
		// Borrado compensatorio: un pedido a medias no puede quedar visible.
		// Si el borrado también falla se loguea, sin enmascarar el error original.
		if delErr := uc.orders.Delete(ctx, order.ID); delErr != nil {
			uc.log.Error().Err(delErr).Str("order_id", order.ID).
				Msg("falló el borrado compensatorio del pedido")
		}
		return nil, domain.Internal("crear líneas del pedido", err)
	}

	if couponID != nil {
		uc.coupons.IncrementUsage(ctx, *couponID)
	}

	uc.log.Info().Str("order_id", order.ID).Str("order_number", order.OrderNumber).
		Str("tenant_id", tenant.ID).Str("total", total.StringFixed(2)).
		Msg("pedido creado")

	return &dto.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       total,
	}, nil
}

// buildItems congela cada línea al precio ya validado; no se vuelve a leer el
// catálogo. Las notas se sintetizan de los nombres de variante/opción elegidos.
func buildItems(orderID string, inputs []dto.OrderItemInput, now time.Time) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, &entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			MenuItemID: in.ID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			Price:      in.Price,
			Notes:      itemNotes(in),
			CreatedAt:  now,
		})
	}
	return items
}

func itemNotes(in dto.OrderItemInput) *string {
	var parts []string
	if in.SelectedVariant != nil && in.SelectedVariant.Name != "" {
		parts = append(parts, in.SelectedVariant.Name)
	}
	if in.SelectedOption != nil && in.SelectedOption.Name != "" {
		parts = append(parts, in.SelectedOption.Name)
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " / ")
	return &s
}
