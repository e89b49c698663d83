package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// allowedTransitions transiciones válidas de estado de pedido.
// pending → preparing → ready → delivered; pending y preparing pueden cancelarse.
var allowedTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered},
}

// CanTransition indica si el cambio de estado from → to está permitido.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order cabecera de pedido. Total es el calculado por el servidor (autoritativo,
// con descuento de cupón ya aplicado); el total reportado por el cliente jamás
// se persiste. Tras la creación este núcleo no la muta, salvo el borrado
// compensatorio si falla la inserción de líneas.
type Order struct {
	ID             string
	TenantID       string
	OrderNumber    string // CMD-<token ordenable>
	Status         string
	Total          decimal.Decimal
	DiscountAmount decimal.Decimal
	CouponID       *string
	TableNumber    *string
	CustomerName   *string
	CustomerPhone  *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItem línea de pedido persistida. Price queda congelado al precio
// validado en el momento del pedido y nunca se recalcula, aunque el catálogo
// cambie después.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Notes      *string
	CreatedAt  time.Time
}
