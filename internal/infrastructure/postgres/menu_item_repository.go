package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo lectura del catálogo de carta sobre PostgreSQL. El catálogo lo
// escribe el módulo de administración; este núcleo solo lee.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, tenant_id, name, price, available, created_at, updated_at`

// GetByID obtiene un artículo del tenant. Devuelve nil si no existe.
func (r *MenuItemRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE tenant_id = $1 AND id = $2`
	var m entity.MenuItem
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(
		&m.ID, &m.TenantID, &m.Name, &m.Price, &m.Available, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// GetByIDs carga en una sola consulta todos los artículos referenciados.
// IDs inexistentes simplemente no aparecen en el resultado.
func (r *MenuItemRepo) GetByIDs(ctx context.Context, tenantID string, ids []string) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE tenant_id = $1 AND id = ANY($2)`
	rows, err := r.q.Query(ctx, query, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}
	defer rows.Close()

	var list []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Price, &m.Available, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
