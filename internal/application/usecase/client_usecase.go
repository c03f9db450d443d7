package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes y sus códigos de servicio.
//
// Cada mutación exitosa deja exactamente una entrada en el historial vía
// ActivityUseCase. El registro es best-effort: si la escritura del historial
// falla, la mutación ya persistida no se revierte (el error queda en el log).
//
// Las ediciones del arreglo de códigos son leer-modificar-escribir sobre el
// cliente completo: ante dos escritores concurrentes gana el último (no hay
// chequeo de versión).
type ClientUseCase struct {
	clients repository.ClientRepository
	audit   *ActivityUseCase
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, audit *ActivityUseCase) *ClientUseCase {
	return &ClientUseCase{clients: clients, audit: audit}
}

// Create crea un cliente. Valida name y cada par service/code, recorta todos
// los campos de texto y descarta los opcionales que queden vacíos.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	codes, err := normalizeCodes(in.Codes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client := &entity.Client{
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		Codes:     codes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}

	id := client.ID
	// Fallo del historial no revierte el alta (best-effort).
	_, _ = uc.audit.Record(entity.ActionCreated, &id, client.Name,
		fmt.Sprintf("Created client %s", client.Name))

	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id int) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// GetAll lista todos los clientes (más recientemente modificado primero).
func (uc *ClientUseCase) GetAll() ([]*dto.ClientResponse, error) {
	list, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update aplica un parcial sobre el cliente. Campo en nil = no tocar; un
// puntero cuyo valor queda vacío tras el trim elimina el campo opcional.
// Si el número de códigos creció se registra code_added, si no updated.
func (uc *ClientUseCase) Update(id int, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	prevCodeCount := len(client.Codes)

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "requerido")
		}
		client.Name = name
	}
	if in.Phone != nil {
		client.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		client.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		client.Address = strings.TrimSpace(*in.Address)
	}
	if in.Codes != nil {
		codes, err := normalizeCodes(*in.Codes)
		if err != nil {
			return nil, err
		}
		client.Codes = codes
	}
	client.UpdatedAt = time.Now()

	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}

	action := entity.ActionUpdated
	description := "Updated client information"
	if added := len(client.Codes) - prevCodeCount; in.Codes != nil && added > 0 {
		action = entity.ActionCodeAdded
		description = fmt.Sprintf("Added %d new service code(s)", added)
	}
	cid := client.ID
	_, _ = uc.audit.Record(action, &cid, client.Name, description)

	return toClientResponse(client), nil
}

// Delete elimina un cliente. El historial se escribe con la instantánea
// previa al borrado (después ya no existe el registro). Devuelve false si
// el ID no existía.
func (uc *ClientUseCase) Delete(id int) (bool, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return false, err
	}
	if client == nil {
		return false, nil
	}

	cid := client.ID
	_, _ = uc.audit.Record(entity.ActionDeleted, &cid, client.Name,
		fmt.Sprintf("Deleted client with %d service code(s)", len(client.Codes)))

	return uc.clients.Delete(id)
}

// normalizeCodes recorta y valida los códigos de servicio. Los campos
// opcionales que quedan vacíos se descartan (ausente, no cadena vacía).
func normalizeCodes(in []entity.ServiceCode) ([]entity.ServiceCode, error) {
	codes := make([]entity.ServiceCode, 0, len(in))
	for i, c := range in {
		nc := entity.ServiceCode{
			Service:           strings.TrimSpace(c.Service),
			Code:              strings.TrimSpace(c.Code),
			AccountHolderName: strings.TrimSpace(c.AccountHolderName),
			Address:           strings.TrimSpace(c.Address),
			PhoneNumber:       strings.TrimSpace(c.PhoneNumber),
		}
		if nc.Service == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("codes[%d].service", i), "requerido")
		}
		if nc.Code == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("codes[%d].code", i), "requerido")
		}
		codes = append(codes, nc)
	}
	return codes, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	codes := c.Codes
	if codes == nil {
		codes = []entity.ServiceCode{}
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Codes:     codes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(list []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out
}
