package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
)

// writeError mapea un error de dominio a su status HTTP estable:
// NOT_FOUND→404, VALIDATION→400, CONFLICT→409, AUTH→403, INTERNAL→500.
// El cliente recibe solo el mensaje de dominio; la causa queda en los logs.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status := fiber.StatusInternalServerError
	switch kind {
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindValidation:
		status = fiber.StatusBadRequest
	case domain.KindConflict:
		status = fiber.StatusConflict
	case domain.KindAuth:
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    string(kind),
		Message: domain.MessageOf(err),
	})
}
