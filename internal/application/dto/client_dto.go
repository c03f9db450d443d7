package dto

import (
	"time"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// CreateClientRequest entrada de POST /api/clients.
// Phone, Email y Address son opcionales; los códigos viajan completos.
type CreateClientRequest struct {
	Name    string               `json:"name"`
	Phone   string               `json:"phone"`
	Email   string               `json:"email"`
	Address string               `json:"address"`
	Codes   []entity.ServiceCode `json:"codes"`
}

// UpdateClientRequest entrada de PATCH /api/clients/:id.
// Punteros para distinguir "no tocar" (nil) de "fijar/borrar" (no nil):
// un puntero a cadena que queda vacía tras el trim elimina el campo.
type UpdateClientRequest struct {
	Name    *string               `json:"name"`
	Phone   *string               `json:"phone"`
	Email   *string               `json:"email"`
	Address *string               `json:"address"`
	Codes   *[]entity.ServiceCode `json:"codes"`
}

// ClientResponse representación JSON de un cliente.
type ClientResponse struct {
	ID        int                  `json:"id"`
	Name      string               `json:"name"`
	Phone     string               `json:"phone,omitempty"`
	Email     string               `json:"email,omitempty"`
	Address   string               `json:"address,omitempty"`
	Codes     []entity.ServiceCode `json:"codes"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
