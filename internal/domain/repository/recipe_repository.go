package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// RecipeRepository puerto de persistencia de recetas (líneas artículo→insumo).
type RecipeRepository interface {
	ListForItem(ctx context.Context, tenantID, menuItemID string) ([]*entity.RecipeLine, error)
	// DeleteForItem e InsertLines componen el reemplazo completo de una
	// receta; se invocan dentro de una transacción (ver recipe.TxRunner).
	DeleteForItem(ctx context.Context, tenantID, menuItemID string) error
	InsertLines(ctx context.Context, lines []*entity.RecipeLine) error
}
