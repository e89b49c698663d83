package recipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

// UseCase resuelve y administra recetas: el mapeo artículo de carta →
// cantidades de insumo que consume.
type UseCase struct {
	recipes   repository.RecipeRepository
	menuItems repository.MenuItemRepository
	txRunner  TxRunner
}

// NewUseCase construye el caso de uso de recetas.
func NewUseCase(recipes repository.RecipeRepository, menuItems repository.MenuItemRepository, txRunner TxRunner) *UseCase {
	return &UseCase{recipes: recipes, menuItems: menuItems, txRunner: txRunner}
}

// GetForItem devuelve las líneas de receta de un artículo de carta.
func (uc *UseCase) GetForItem(ctx context.Context, tenantID, menuItemID string) ([]dto.RecipeLineDTO, error) {
	item, err := uc.menuItems.GetByID(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, domain.Internal("consultar artículo", err)
	}
	if item == nil {
		return nil, domain.NotFound("artículo de carta no encontrado")
	}
	lines, err := uc.recipes.ListForItem(ctx, tenantID, menuItemID)
	if err != nil {
		return nil, domain.Internal("consultar receta", err)
	}
	out := make([]dto.RecipeLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.RecipeLineDTO{
			IngredientID:   l.IngredientID,
			QuantityNeeded: l.QuantityNeeded,
		})
	}
	return out, nil
}

// SetRecipe reemplaza la receta completa de un artículo vía delete-then-insert
// dentro de una transacción: si el insert falla, el rollback conserva la
// receta anterior y la falla sale como INTERNAL.
func (uc *UseCase) SetRecipe(ctx context.Context, tenantID, menuItemID string, in dto.SetRecipeRequest) error {
	item, err := uc.menuItems.GetByID(ctx, tenantID, menuItemID)
	if err != nil {
		return domain.Internal("consultar artículo", err)
	}
	if item == nil {
		return domain.NotFound("artículo de carta no encontrado")
	}

	lines := make([]*entity.RecipeLine, 0, len(in.Lines))
	seen := make(map[string]struct{}, len(in.Lines))
	for _, l := range in.Lines {
		if l.IngredientID == "" {
			return domain.Validation("cada línea de receta requiere un insumo")
		}
		if !l.QuantityNeeded.GreaterThan(decimal.Zero) {
			return domain.Validationf("la cantidad del insumo %s debe ser mayor que 0", l.IngredientID)
		}
		if _, dup := seen[l.IngredientID]; dup {
			return domain.Validationf("insumo repetido en la receta: %s", l.IngredientID)
		}
		seen[l.IngredientID] = struct{}{}
		lines = append(lines, &entity.RecipeLine{
			ID:             uuid.New().String(),
			TenantID:       tenantID,
			MenuItemID:     menuItemID,
			IngredientID:   l.IngredientID,
			QuantityNeeded: l.QuantityNeeded,
		})
	}

	err = uc.txRunner.Run(ctx, func(recipes repository.RecipeRepository) error {
		if err := recipes.DeleteForItem(ctx, tenantID, menuItemID); err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return recipes.InsertLines(ctx, lines)
	})
	if err != nil {
		return domain.Internal("reemplazar receta", err)
	}
	return nil
}
