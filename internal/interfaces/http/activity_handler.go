package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
)

// ActivityHandler maneja las consultas del historial de actividad.
// El historial no expone mutaciones por HTTP: las entradas las generan los
// casos de uso al mutar clientes y catálogo.
type ActivityHandler struct {
	uc     *usecase.ActivityUseCase
	expose bool
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase, expose bool) *ActivityHandler {
	return &ActivityHandler{uc: uc, expose: expose}
}

// List GET /api/activities?date=2026-08-28&limit=5
// Con date filtra a un día calendario; con limit acota el feed (el tope por
// defecto es 100 entradas).
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	if dateParam := c.Query("date"); dateParam != "" {
		day, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		list, err := h.uc.ListByDate(day)
		if err != nil {
			return serverError(c, "Failed to fetch activities", err, h.expose)
		}
		return c.JSON(list)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	list, err := h.uc.List(limit)
	if err != nil {
		return serverError(c, "Failed to fetch activities", err, h.expose)
	}
	return c.JSON(list)
}
