package gormstore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ServiceCatalogRepository = (*ServiceCatalogRepo)(nil)

// ServiceCatalogRepo implementación GORM/SQLite del catálogo de servicios.
type ServiceCatalogRepo struct {
	db *gorm.DB
}

// NewServiceCatalogRepository construye el adaptador.
func NewServiceCatalogRepository(db *gorm.DB) *ServiceCatalogRepo {
	return &ServiceCatalogRepo{db: db}
}

// GetAll lista el catálogo completo (incluye desactivados) ordenado por nombre.
func (r *ServiceCatalogRepo) GetAll() ([]*entity.ServiceCodeConfig, error) {
	return r.list(r.db)
}

// GetActive lista solo las entradas activas, ordenadas por nombre.
func (r *ServiceCatalogRepo) GetActive() ([]*entity.ServiceCodeConfig, error) {
	return r.list(r.db.Where("is_active = ?", 1))
}

func (r *ServiceCatalogRepo) list(q *gorm.DB) ([]*entity.ServiceCodeConfig, error) {
	var models []serviceCodeModel
	if err := q.Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list service codes: %w", err)
	}
	list := make([]*entity.ServiceCodeConfig, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list, nil
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *ServiceCatalogRepo) GetByID(id int) (*entity.ServiceCodeConfig, error) {
	var model serviceCodeModel
	err := r.db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service code: %w", err)
	}
	return model.toEntity(), nil
}

// GetByServiceID obtiene una entrada por su clave de negocio.
func (r *ServiceCatalogRepo) GetByServiceID(serviceID string) (*entity.ServiceCodeConfig, error) {
	var model serviceCodeModel
	err := r.db.Where("service_id = ?", serviceID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service code by service_id: %w", err)
	}
	return model.toEntity(), nil
}

// Create persiste una entrada nueva. Un service_id repetido devuelve
// domain.ErrDuplicate.
func (r *ServiceCatalogRepo) Create(config *entity.ServiceCodeConfig) error {
	model := catalogFromEntity(config)
	model.ID = 0 // lo asigna el autoincrement
	if err := r.db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service code: %w", err)
	}
	config.ID = model.ID
	return nil
}

// Update reemplaza la entrada completa.
func (r *ServiceCatalogRepo) Update(config *entity.ServiceCodeConfig) error {
	if err := r.db.Save(catalogFromEntity(config)).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service code: %w", err)
	}
	return nil
}

// isUniqueViolation detecta el error de índice único de SQLite.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
