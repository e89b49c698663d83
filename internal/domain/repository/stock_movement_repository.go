package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// StockMovementRepository puerto de lectura del libro de movimientos.
// Los movimientos se insertan únicamente desde los procedimientos atómicos
// (StockRepository); aquí solo se consultan para auditoría.
type StockMovementRepository interface {
	ListByIngredient(ctx context.Context, tenantID, ingredientID string, limit, offset int) ([]*entity.StockMovement, error)
}
