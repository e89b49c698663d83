package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// IngredientRepository puerto de lectura de insumos. current_stock solo se
// escribe vía los procedimientos atómicos de StockRepository.
type IngredientRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*entity.Ingredient, error)
	List(ctx context.Context, tenantID string) ([]*entity.Ingredient, error)
	// ListLowStock devuelve los insumos activos con current_stock <= min_stock_alert.
	ListLowStock(ctx context.Context, tenantID string) ([]*entity.Ingredient, error)
}
