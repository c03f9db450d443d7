package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc     *usecase.ClientUseCase
	expose bool // incluir detalle de error en respuestas (no producción)
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, expose bool) *ClientHandler {
	return &ClientHandler{uc: uc, expose: expose}
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return serverError(c, "Failed to fetch clients", err, h.expose)
	}
	return c.JSON(list)
}

// Search GET /api/clients/search/:query?limit=10
// Sin limit la búsqueda no se acota (operación bulk); la UI interactiva
// pasa limit=10.
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	list, err := h.uc.Search(c.Params("query"), limit)
	if err != nil {
		return serverError(c, "Failed to search clients", err, h.expose)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid client ID")
	}
	client, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.JSON(client)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PATCH /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid client ID")
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	client, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, h.expose)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid client ID")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return serverError(c, "Failed to delete client", err, h.expose)
	}
	if !deleted {
		return notFound(c, "Client not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
