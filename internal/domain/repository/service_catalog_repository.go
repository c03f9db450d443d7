package repository

import "github.com/jhoicas/gestion-clientes/internal/domain/entity"

// ServiceCatalogRepository define el puerto del catálogo de servicios.
// GetAll lista todo el catálogo (incluye entradas desactivadas) ordenado por
// nombre; GetActive solo las entradas con is_active = 1. El borrado del
// catálogo es suave (Update con IsActive = 0), por eso no hay Delete.
type ServiceCatalogRepository interface {
	GetAll() ([]*entity.ServiceCodeConfig, error)
	GetActive() ([]*entity.ServiceCodeConfig, error)
	GetByID(id int) (*entity.ServiceCodeConfig, error)
	GetByServiceID(serviceID string) (*entity.ServiceCodeConfig, error)
	Create(config *entity.ServiceCodeConfig) error
	Update(config *entity.ServiceCodeConfig) error
}
