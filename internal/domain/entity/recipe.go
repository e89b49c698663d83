package entity

import "github.com/shopspring/decimal"

// RecipeLine asocia un artículo de carta con la cantidad de un insumo que
// consume. La receta completa de un artículo es el conjunto de sus líneas.
type RecipeLine struct {
	ID             string
	TenantID       string
	MenuItemID     string
	IngredientID   string
	QuantityNeeded decimal.Decimal
}
