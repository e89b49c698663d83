package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/recipe"
)

// RecipeHandler maneja las recetas artículo→insumos (protegido).
type RecipeHandler struct {
	uc *recipe.UseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipe.UseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Get godoc
// @Summary      Receta de un artículo de carta
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        menuItemId  path  string  true  "ID del artículo"
// @Success      200  {array}   dto.RecipeLineDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/menu-items/{menuItemId}/recipe [get]
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetForItem(c.Context(), GetTenantID(c), c.Params("menuItemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Reemplazar la receta completa de un artículo
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        menuItemId  path  string                true  "ID del artículo"
// @Param        body        body  dto.SetRecipeRequest  true  "líneas nuevas (vacío borra la receta)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/menu-items/{menuItemId}/recipe [put]
func (h *RecipeHandler) Set(c *fiber.Ctx) error {
	var in dto.SetRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetRecipe(c.Context(), GetTenantID(c), c.Params("menuItemId"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta actualizada"})
}
