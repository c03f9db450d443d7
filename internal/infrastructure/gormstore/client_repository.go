package gormstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación GORM/SQLite de ClientRepository.
type ClientRepo struct {
	db *gorm.DB
}

// NewClientRepository construye el adaptador.
func NewClientRepository(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// GetAll lista los clientes, el más recientemente modificado primero.
func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	var models []clientModel
	if err := r.db.Order("updated_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	list := make([]*entity.Client, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list, nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	var model clientModel
	err := r.db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return model.toEntity(), nil
}

// Create persiste un cliente nuevo; el autoincrement asigna el ID y queda
// escrito en la entidad.
func (r *ClientRepo) Create(client *entity.Client) error {
	model := clientFromEntity(client)
	model.ID = 0 // lo asigna el autoincrement
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	client.ID = model.ID
	return nil
}

// Update reemplaza el registro completo (Save escribe todas las columnas,
// incluidas las que quedaron en NULL: así "borrar campo" funciona).
func (r *ClientRepo) Update(client *entity.Client) error {
	if err := r.db.Save(clientFromEntity(client)).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Devuelve false (sin error) si el ID no existía.
func (r *ClientRepo) Delete(id int) (bool, error) {
	tx := r.db.Delete(&clientModel{}, id)
	if tx.Error != nil {
		return false, fmt.Errorf("delete client: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}
