package dto

import "github.com/shopspring/decimal"

// RecipeLineDTO línea de receta: cantidad de un insumo que consume un artículo.
type RecipeLineDTO struct {
	IngredientID   string          `json:"ingredientId"`
	QuantityNeeded decimal.Decimal `json:"quantityNeeded"`
}

// SetRecipeRequest reemplaza la receta completa de un artículo de carta.
type SetRecipeRequest struct {
	Lines []RecipeLineDTO `json:"lines"`
}
