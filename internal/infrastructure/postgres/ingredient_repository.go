package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo lectura de insumos sobre PostgreSQL. current_stock solo lo
// escriben los procedimientos atómicos (ver StockRepo).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, tenant_id, name, unit, current_stock, min_stock_alert, cost_per_unit, active, created_at, updated_at`

// GetByID obtiene un insumo del tenant. Devuelve nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE tenant_id = $1 AND id = $2`
	var i entity.Ingredient
	err := r.q.QueryRow(ctx, query, tenantID, id).Scan(
		&i.ID, &i.TenantID, &i.Name, &i.Unit, &i.CurrentStock, &i.MinStockAlert,
		&i.CostPerUnit, &i.Active, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// List devuelve todos los insumos del tenant ordenados por nombre.
func (r *IngredientRepo) List(ctx context.Context, tenantID string) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE tenant_id = $1 ORDER BY name`
	return r.list(ctx, query, tenantID)
}

// ListLowStock devuelve los insumos activos en o por debajo de su umbral de alerta.
func (r *IngredientRepo) ListLowStock(ctx context.Context, tenantID string) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE tenant_id = $1 AND active AND current_stock <= min_stock_alert
		ORDER BY name`
	return r.list(ctx, query, tenantID)
}

func (r *IngredientRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.TenantID, &i.Name, &i.Unit, &i.CurrentStock, &i.MinStockAlert,
			&i.CostPerUnit, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
