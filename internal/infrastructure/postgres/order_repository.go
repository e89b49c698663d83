package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo persistencia de pedidos sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CreateHeader inserta la cabecera del pedido.
func (r *OrderRepo) CreateHeader(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, tenant_id, order_number, status, total, discount_amount, coupon_id,
			table_number, customer_name, customer_phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.TenantID, o.OrderNumber, o.Status, o.Total, o.DiscountAmount, o.CouponID,
		o.TableNumber, o.CustomerName, o.CustomerPhone, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItems inserta todas las líneas en un solo batch (pipeline pgx).
func (r *OrderRepo) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("insert order items: lista vacía")
	}
	query := `
		INSERT INTO order_items (id, order_id, menu_item_id, name, quantity, price, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, it.ID, it.OrderID, it.MenuItemID, it.Name, it.Quantity, it.Price, it.Notes, it.CreatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// Delete elimina líneas y cabecera de un pedido (borrado compensatorio).
func (r *OrderRepo) Delete(ctx context.Context, orderID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	query := `
		SELECT id, tenant_id, order_number, status, total, discount_amount, coupon_id,
			table_number, customer_name, customer_phone, notes, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, orderID).Scan(
		&o.ID, &o.TenantID, &o.OrderNumber, &o.Status, &o.Total, &o.DiscountAmount, &o.CouponID,
		&o.TableNumber, &o.CustomerName, &o.CustomerPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItems obtiene las líneas de un pedido.
func (r *OrderRepo) GetItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, name, quantity, price, notes, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.Quantity, &it.Price, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza el estado de un pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	query := `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order status: pedido %s no existe", orderID)
	}
	return nil
}
