package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC   *usecase.ClientUseCase
	ActivityUC *usecase.ActivityUseCase
	CatalogUC  *usecase.CatalogUseCase
	StatsUC    *usecase.StatsUseCase
	JWTSecret  string // vacío = API pública (sin gate de autenticación)
	Expose     bool   // incluir detalle de errores en respuestas (no producción)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	// Clients: /search/:query va antes que /:id para que no lo capture
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Expose)
	clients.Get("/", clientHandler.List)
	clients.Get("/search/:query", clientHandler.Search)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", clientHandler.Create)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Historial de actividad (solo lectura)
	activityHandler := NewActivityHandler(deps.ActivityUC, deps.Expose)
	api.Get("/activities", activityHandler.List)

	// Catálogo de servicios
	catalog := api.Group("/service-codes")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Expose)
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/:id", catalogHandler.GetByID)
	catalog.Post("/", catalogHandler.Create)
	catalog.Patch("/:id", catalogHandler.Update)
	catalog.Delete("/:id", catalogHandler.Delete)

	// Dashboard
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Expose)
	api.Get("/statistics", statsHandler.Get)
}
