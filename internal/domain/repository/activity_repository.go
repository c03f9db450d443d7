package repository

import (
	"time"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// ActivityRepository define el puerto del historial de actividad.
// El historial es append-only: no hay Update ni Delete. Los listados vienen
// ordenados por created_at descendente (y por id como desempate).
type ActivityRepository interface {
	// GetAll devuelve las actividades más recientes; limit <= 0 = sin tope.
	GetAll(limit int) ([]*entity.Activity, error)
	// GetByDate devuelve las actividades de un día calendario (00:00–23:59).
	GetByDate(day time.Time) ([]*entity.Activity, error)
	Create(activity *entity.Activity) error
}
