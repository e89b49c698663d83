package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/inventory"
)

// InventoryHandler maneja los ajustes y consultas de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Registrar un ajuste manual de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "ingredientId, quantity (magnitud), movementType"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AdjustStock(c.Context(), GetTenantID(c), GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}

// SetOpening godoc
// @Summary      Fijar el saldo inicial de un insumo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpeningStockRequest  true  "ingredientId, quantity"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/opening [post]
func (h *InventoryHandler) SetOpening(c *fiber.Ctx) error {
	var in dto.OpeningStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetOpeningStock(c.Context(), GetTenantID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "saldo inicial fijado"})
}

// StockStatus godoc
// @Summary      Insumos en o por debajo de su umbral de alerta
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockStatusDTO
// @Router       /api/admin/inventory/status [get]
func (h *InventoryHandler) StockStatus(c *fiber.Ctx) error {
	out, err := h.uc.GetStockStatus(c.Context(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Libro de movimientos de un insumo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        ingredient_id  query  string  true   "ID del insumo"
// @Param        limit          query  int     false  "máx. filas (default 20)"
// @Param        offset         query  int     false  "desplazamiento"
// @Success      200  {array}  dto.StockMovementDTO
// @Router       /api/admin/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	ingredientID := c.Query("ingredient_id")
	if ingredientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ingredient_id requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	out, err := h.uc.ListMovements(c.Context(), GetTenantID(c), ingredientID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
