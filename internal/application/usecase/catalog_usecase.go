package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

// defaultServiceCodes se siembran la primera vez que el catálogo se lee vacío.
var defaultServiceCodes = []entity.ServiceCodeConfig{
	{ServiceID: "inwi", Name: "Inwi", Category: entity.CategoryTelecom, IsActive: 1},
	{ServiceID: "orange", Name: "Orange", Category: entity.CategoryTelecom, IsActive: 1},
	{ServiceID: "maroc-telecom", Name: "Maroc Telecom", Category: entity.CategoryTelecom, IsActive: 1},
	{ServiceID: "water", Name: "Water", Category: entity.CategoryUtility, IsActive: 1},
	{ServiceID: "gas", Name: "Gas", Category: entity.CategoryUtility, IsActive: 1},
	{ServiceID: "electricity", Name: "Electricity", Category: entity.CategoryUtility, IsActive: 1},
}

// CatalogUseCase administra el catálogo de servicios disponibles.
//
// El borrado es suave: Delete baja IsActive a 0 y la entrada queda fuera del
// listado de activos pero sigue siendo consultable por ID y visible en el
// listado completo. Las mutaciones vía API dejan historial con clientId nulo
// y clientName "System"; la siembra inicial no genera historial.
type CatalogUseCase struct {
	catalog repository.ServiceCatalogRepository
	audit   *ActivityUseCase
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.ServiceCatalogRepository, audit *ActivityUseCase) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, audit: audit}
}

// GetAll lista el catálogo. Si el catálogo está vacío siembra los seis
// servicios por defecto y relee (siembra idempotente: service_id es único y
// los duplicados de una siembra concurrente se ignoran).
// activeOnly limita a las entradas con is_active = 1.
func (uc *CatalogUseCase) GetAll(activeOnly bool) ([]*dto.ServiceCodeConfigResponse, error) {
	list, err := uc.catalog.GetAll()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		if err := uc.seedDefaults(); err != nil {
			return nil, err
		}
		list, err = uc.catalog.GetAll()
		if err != nil {
			return nil, err
		}
	}
	if activeOnly {
		list, err = uc.catalog.GetActive()
		if err != nil {
			return nil, err
		}
	}
	return toCatalogResponses(list), nil
}

// GetByID obtiene una entrada del catálogo (incluye las desactivadas).
func (uc *CatalogUseCase) GetByID(id int) (*dto.ServiceCodeConfigResponse, error) {
	config, err := uc.catalog.GetByID(id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}
	return toCatalogResponse(config), nil
}

// Create agrega un servicio al catálogo. serviceId debe ser único.
func (uc *CatalogUseCase) Create(in dto.CreateServiceCodeRequest) (*dto.ServiceCodeConfigResponse, error) {
	serviceID := strings.TrimSpace(in.ServiceID)
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if serviceID == "" {
		return nil, domain.NewValidationError("serviceId", "requerido")
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	if category == "" {
		return nil, domain.NewValidationError("category", "requerido")
	}

	existing, err := uc.catalog.GetByServiceID(serviceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	isActive := 1
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	config := &entity.ServiceCodeConfig{
		ServiceID: serviceID,
		Name:      name,
		Category:  category,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.catalog.Create(config); err != nil {
		return nil, err
	}

	_, _ = uc.audit.Record(entity.ActionServiceAdded, nil, "System",
		fmt.Sprintf("Added new service: %s (%s)", config.Name, config.Category))

	return toCatalogResponse(config), nil
}

// Update aplica un parcial sobre una entrada del catálogo.
func (uc *CatalogUseCase) Update(id int, in dto.UpdateServiceCodeRequest) (*dto.ServiceCodeConfigResponse, error) {
	config, err := uc.catalog.GetByID(id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}

	if in.ServiceID != nil {
		serviceID := strings.TrimSpace(*in.ServiceID)
		if serviceID == "" {
			return nil, domain.NewValidationError("serviceId", "requerido")
		}
		config.ServiceID = serviceID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "requerido")
		}
		config.Name = name
	}
	if in.Category != nil {
		config.Category = strings.TrimSpace(*in.Category)
	}
	if in.IsActive != nil {
		config.IsActive = *in.IsActive
	}
	config.UpdatedAt = time.Now()

	if err := uc.catalog.Update(config); err != nil {
		return nil, err
	}

	_, _ = uc.audit.Record(entity.ActionServiceUpdated, nil, "System",
		fmt.Sprintf("Updated service: %s", config.Name))

	return toCatalogResponse(config), nil
}

// Delete desactiva una entrada (borrado suave). Devuelve false si no existe.
func (uc *CatalogUseCase) Delete(id int) (bool, error) {
	config, err := uc.catalog.GetByID(id)
	if err != nil {
		return false, err
	}
	if config == nil {
		return false, nil
	}

	config.IsActive = 0
	config.UpdatedAt = time.Now()
	if err := uc.catalog.Update(config); err != nil {
		return false, err
	}

	_, _ = uc.audit.Record(entity.ActionServiceDeleted, nil, "System",
		fmt.Sprintf("Deleted service: %s", config.Name))

	return true, nil
}

// seedDefaults inserta los servicios por defecto. Los conflictos de
// service_id (otra instancia sembró primero) se ignoran.
func (uc *CatalogUseCase) seedDefaults() error {
	now := time.Now()
	for _, def := range defaultServiceCodes {
		config := def
		config.CreatedAt = now
		config.UpdatedAt = now
		if err := uc.catalog.Create(&config); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("sembrar catálogo: %w", err)
		}
	}
	return nil
}

func toCatalogResponse(c *entity.ServiceCodeConfig) *dto.ServiceCodeConfigResponse {
	return &dto.ServiceCodeConfigResponse{
		ID:        c.ID,
		ServiceID: c.ServiceID,
		Name:      c.Name,
		Category:  c.Category,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCatalogResponses(list []*entity.ServiceCodeConfig) []*dto.ServiceCodeConfigResponse {
	out := make([]*dto.ServiceCodeConfigResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCatalogResponse(c))
	}
	return out
}
