package order

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/inventory"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
)

// StatusUseCase transiciones de estado de pedido y consulta. La transición
// pending → preparing es el único punto que dispara el descuento de insumos:
// se invoca una sola vez por pedido.
type StatusUseCase struct {
	orders    repository.OrderRepository
	inventory *inventory.UseCase
	log       *logger.Logger
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(orders repository.OrderRepository, inv *inventory.UseCase, log *logger.Logger) *StatusUseCase {
	return &StatusUseCase{orders: orders, inventory: inv, log: log}
}

// UpdateStatus aplica una transición de estado permitida. Al confirmar
// (pending → preparing) descuenta los insumos según las recetas; una falla en
// el descuento se loguea y no revierte el cambio de estado.
func (uc *StatusUseCase) UpdateStatus(ctx context.Context, tenantID, orderID, newStatus string) error {
	if !entity.ValidOrderStatus(newStatus) {
		return domain.Validationf("estado desconocido: %q", newStatus)
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.Internal("consultar pedido", err)
	}
	if order == nil || order.TenantID != tenantID {
		return domain.NotFound("pedido no encontrado")
	}
	if !entity.CanTransition(order.Status, newStatus) {
		return domain.Validationf("transición no permitida: %s → %s", order.Status, newStatus)
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return domain.Internal("actualizar estado del pedido", err)
	}

	if order.Status == entity.OrderStatusPending && newStatus == entity.OrderStatusPreparing {
		if _, err := uc.inventory.DestockOrder(ctx, orderID, tenantID); err != nil {
			uc.log.Error().Err(err).Str("order_id", orderID).
				Msg("no se pudieron descontar los insumos del pedido confirmado")
		}
	}
	return nil
}

// Get devuelve el pedido con sus líneas.
func (uc *StatusUseCase) Get(ctx context.Context, tenantID, orderID string) (*dto.OrderDTO, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, domain.Internal("consultar pedido", err)
	}
	if order == nil || order.TenantID != tenantID {
		return nil, domain.NotFound("pedido no encontrado")
	}
	items, err := uc.orders.GetItems(ctx, orderID)
	if err != nil {
		return nil, domain.Internal("consultar líneas del pedido", err)
	}

	out := &dto.OrderDTO{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         order.Status,
		Total:          order.Total,
		DiscountAmount: order.DiscountAmount,
		TableNumber:    order.TableNumber,
		CustomerName:   order.CustomerName,
		CreatedAt:      order.CreatedAt,
		Items:          make([]dto.OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.OrderItemDTO{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Notes:      it.Notes,
		})
	}
	return out, nil
}
