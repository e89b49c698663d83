package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/coupon"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
)

// CouponHandler maneja la administración y validación de cupones (protegido).
type CouponHandler struct {
	uc *coupon.UseCase
}

// NewCouponHandler construye el handler.
func NewCouponHandler(uc *coupon.UseCase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

// Create godoc
// @Summary      Crear un cupón
// @Tags         coupons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCouponRequest  true  "code, discountType, discountValue, ..."
// @Success      201   {object}  dto.CouponDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/coupons [post]
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cupones del restaurante
// @Tags         coupons
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CouponDTO
// @Router       /api/admin/coupons [get]
func (h *CouponHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar un código de cupón contra un subtotal
// @Description  La invalidez es un resultado normal: responde 200 con valid=false.
// @Tags         coupons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCouponRequest  true  "code, subtotal"
// @Success      200   {object}  dto.ValidateCouponResponse
// @Router       /api/admin/coupons/validate [post]
func (h *CouponHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Validate(c.Context(), in.Code, GetTenantID(c), in.Subtotal)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ValidateCouponResponse{
		Valid:          res.Valid,
		DiscountAmount: res.DiscountAmount,
		Error:          res.Reason,
	})
}
