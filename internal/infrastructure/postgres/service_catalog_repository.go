package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ServiceCatalogRepository = (*ServiceCatalogRepo)(nil)

// ServiceCatalogRepo implementación pgx del catálogo de servicios.
type ServiceCatalogRepo struct {
	q Querier
}

// NewServiceCatalogRepository construye el adaptador.
func NewServiceCatalogRepository(q Querier) *ServiceCatalogRepo {
	return &ServiceCatalogRepo{q: q}
}

const catalogColumns = `id, service_id, name, category, is_active, created_at, updated_at`

// GetAll lista el catálogo completo (incluye desactivados) ordenado por nombre.
func (r *ServiceCatalogRepo) GetAll() ([]*entity.ServiceCodeConfig, error) {
	return r.list(`SELECT ` + catalogColumns + ` FROM service_codes ORDER BY name`)
}

// GetActive lista solo las entradas activas, ordenadas por nombre.
func (r *ServiceCatalogRepo) GetActive() ([]*entity.ServiceCodeConfig, error) {
	return r.list(`SELECT ` + catalogColumns + ` FROM service_codes WHERE is_active = 1 ORDER BY name`)
}

func (r *ServiceCatalogRepo) list(query string) ([]*entity.ServiceCodeConfig, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list service codes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceCodeConfig
	for rows.Next() {
		var c entity.ServiceCodeConfig
		if err := rows.Scan(&c.ID, &c.ServiceID, &c.Name, &c.Category, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service code: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *ServiceCatalogRepo) GetByID(id int) (*entity.ServiceCodeConfig, error) {
	return r.one(`SELECT `+catalogColumns+` FROM service_codes WHERE id = $1`, id)
}

// GetByServiceID obtiene una entrada por su clave de negocio.
func (r *ServiceCatalogRepo) GetByServiceID(serviceID string) (*entity.ServiceCodeConfig, error) {
	return r.one(`SELECT `+catalogColumns+` FROM service_codes WHERE service_id = $1`, serviceID)
}

func (r *ServiceCatalogRepo) one(query string, arg any) (*entity.ServiceCodeConfig, error) {
	var c entity.ServiceCodeConfig
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.ServiceID, &c.Name, &c.Category, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service code: %w", err)
	}
	return &c, nil
}

// Create persiste una entrada nueva. Un service_id repetido devuelve
// domain.ErrDuplicate (la siembra concurrente lo ignora).
func (r *ServiceCatalogRepo) Create(config *entity.ServiceCodeConfig) error {
	query := `
		INSERT INTO service_codes (service_id, name, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		config.ServiceID, config.Name, config.Category, config.IsActive, config.CreatedAt, config.UpdatedAt,
	).Scan(&config.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service code: %w", err)
	}
	return nil
}

// Update reemplaza la entrada completa (el borrado suave llega por aquí con
// is_active = 0).
func (r *ServiceCatalogRepo) Update(config *entity.ServiceCodeConfig) error {
	query := `
		UPDATE service_codes
		SET service_id = $2, name = $3, category = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		config.ID, config.ServiceID, config.Name, config.Category, config.IsActive, config.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service code: %w", err)
	}
	return nil
}
