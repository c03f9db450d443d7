package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
)

// StatsHandler expone los contadores del dashboard.
type StatsHandler struct {
	uc     *usecase.StatsUseCase
	expose bool
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, expose bool) *StatsHandler {
	return &StatsHandler{uc: uc, expose: expose}
}

// Get GET /api/statistics
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.uc.GetStatistics()
	if err != nil {
		return serverError(c, "Failed to fetch statistics", err, h.expose)
	}
	return c.JSON(stats)
}
