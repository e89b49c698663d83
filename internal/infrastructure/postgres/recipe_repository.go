package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo persistencia de líneas de receta sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier);
// el reemplazo de recetas se ejecuta siempre con tx (ver TxRunner).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListForItem devuelve las líneas de receta de un artículo.
func (r *RecipeRepo) ListForItem(ctx context.Context, tenantID, menuItemID string) ([]*entity.RecipeLine, error) {
	query := `
		SELECT id, tenant_id, menu_item_id, ingredient_id, quantity_needed
		FROM recipes WHERE tenant_id = $1 AND menu_item_id = $2`
	rows, err := r.q.Query(ctx, query, tenantID, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.RecipeLine
	for rows.Next() {
		var l entity.RecipeLine
		if err := rows.Scan(&l.ID, &l.TenantID, &l.MenuItemID, &l.IngredientID, &l.QuantityNeeded); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteForItem elimina todas las líneas de receta de un artículo.
func (r *RecipeRepo) DeleteForItem(ctx context.Context, tenantID, menuItemID string) error {
	query := `DELETE FROM recipes WHERE tenant_id = $1 AND menu_item_id = $2`
	if _, err := r.q.Exec(ctx, query, tenantID, menuItemID); err != nil {
		return fmt.Errorf("delete recipe lines: %w", err)
	}
	return nil
}

// InsertLines inserta las líneas nuevas en un solo batch.
func (r *RecipeRepo) InsertLines(ctx context.Context, lines []*entity.RecipeLine) error {
	query := `
		INSERT INTO recipes (id, tenant_id, menu_item_id, ingredient_id, quantity_needed)
		VALUES ($1, $2, $3, $4, $5)`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query, l.ID, l.TenantID, l.MenuItemID, l.IngredientID, l.QuantityNeeded)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range lines {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}
