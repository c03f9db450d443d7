package repository

import "github.com/jhoicas/gestion-clientes/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// GetAll y las búsquedas devuelven los clientes ordenados por updated_at
// descendente (el más recientemente tocado primero); GetByID devuelve
// (nil, nil) si no existe. Create asigna el ID con la secuencia del almacén
// y lo deja escrito en la entidad antes de retornar.
type ClientRepository interface {
	GetAll() ([]*entity.Client, error)
	GetByID(id int) (*entity.Client, error)
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	Delete(id int) (bool, error)
}
