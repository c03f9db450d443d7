package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de servicios.
type CatalogHandler struct {
	uc     *usecase.CatalogUseCase
	expose bool
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, expose bool) *CatalogHandler {
	return &CatalogHandler{uc: uc, expose: expose}
}

// List GET /api/service-codes?active=1
// La primera lectura de un catálogo vacío siembra los seis servicios por
// defecto. active=1 excluye las entradas con borrado suave.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	activeOnly := c.Query("active") == "1" || c.Query("active") == "true"
	list, err := h.uc.GetAll(activeOnly)
	if err != nil {
		return serverError(c, "Failed to fetch service codes", err, h.expose)
	}
	return c.JSON(list)
}

// GetByID GET /api/service-codes/:id
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service code ID")
	}
	config, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.JSON(config)
}

// Create POST /api/service-codes
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	config, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.Status(fiber.StatusCreated).JSON(config)
}

// Update PATCH /api/service-codes/:id
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service code ID")
	}
	var in dto.UpdateServiceCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	config, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.JSON(config)
}

// Delete DELETE /api/service-codes/:id (borrado suave: is_active pasa a 0)
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service code ID")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return serverError(c, "Failed to delete service code", err, h.expose)
	}
	if !deleted {
		return notFound(c, "Service code not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
