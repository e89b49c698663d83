package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	// CreateHeader inserta la cabecera del pedido.
	CreateHeader(ctx context.Context, order *entity.Order) error
	// CreateItems inserta todas las líneas en un solo batch.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error
	// Delete elimina cabecera y líneas: es el borrado compensatorio cuando la
	// inserción de líneas falla, para que nunca quede visible un pedido a medias.
	Delete(ctx context.Context, orderID string) error
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)
	GetItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}
