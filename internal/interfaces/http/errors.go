package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain"
)

// respond traduce errores de dominio a HTTP: validación 400, no encontrado
// 404, duplicado 409, resto 500. El detalle interno (campo error) solo se
// expone fuera de producción.
func respondError(c *fiber.Ctx, err error, expose bool) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Validation error: " + verr.Field + " " + verr.Reason,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Validation error"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Not found"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Duplicate resource"})
	default:
		return serverError(c, "Internal server error", err, expose)
	}
}

// serverError responde 500 con mensaje fijo; err va en el campo error solo
// si expose es true (APP_ENV != production).
func serverError(c *fiber.Ctx, message string, err error, expose bool) error {
	body := dto.ErrorResponse{Message: message}
	if expose && err != nil {
		body.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: message})
}
