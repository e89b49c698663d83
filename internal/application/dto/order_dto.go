package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectedVariant variante elegida por el cliente (nombre + precio reclamado).
type SelectedVariant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// SelectedOption opción elegida por el cliente (solo nombre, no altera precio).
type SelectedOption struct {
	Name string `json:"name"`
}

// OrderItemInput línea de carrito tal como la envía el cliente. El precio y el
// nombre son reclamados: la validación los contrasta contra el catálogo del
// servidor antes de aceptar nada.
type OrderItemInput struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	Quantity        int              `json:"quantity"`
	SelectedVariant *SelectedVariant `json:"selectedVariant,omitempty"`
	SelectedOption  *SelectedOption  `json:"selectedOption,omitempty"`
}

// CreateOrderRequest carrito enviado desde la carta pública (QR). El total que
// calcule el cliente jamás viaja ni se lee.
type CreateOrderRequest struct {
	TenantSlug    string           `json:"tenantSlug"`
	Items         []OrderItemInput `json:"items"`
	TableNumber   *string          `json:"tableNumber,omitempty"`
	CustomerName  *string          `json:"customerName,omitempty"`
	CustomerPhone *string          `json:"customerPhone,omitempty"`
	CouponCode    string           `json:"couponCode,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// CreateOrderResponse resultado de la creación de un pedido.
type CreateOrderResponse struct {
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Total       decimal.Decimal `json:"total"`
}

// UpdateOrderStatusRequest transición de estado solicitada por el dashboard.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemDTO línea persistida en respuestas de consulta.
type OrderItemDTO struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Notes      *string         `json:"notes,omitempty"`
}

// OrderDTO pedido completo en respuestas de consulta.
type OrderDTO struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	Status         string          `json:"status"`
	Total          decimal.Decimal `json:"total"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TableNumber    *string         `json:"tableNumber,omitempty"`
	CustomerName   *string         `json:"customerName,omitempty"`
	Items          []OrderItemDTO  `json:"items"`
	CreatedAt      time.Time       `json:"createdAt"`
}
