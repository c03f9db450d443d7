package gormstore

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación GORM/SQLite del historial (append-only).
type ActivityRepo struct {
	db *gorm.DB
}

// NewActivityRepository construye el adaptador.
func NewActivityRepository(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// GetAll devuelve las actividades más recientes primero. limit <= 0 = sin tope.
func (r *ActivityRepo) GetAll(limit int) ([]*entity.Activity, error) {
	q := r.db.Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var models []activityModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return toActivities(models), nil
}

// GetByDate devuelve las actividades de un día calendario.
func (r *ActivityRepo) GetByDate(day time.Time) ([]*entity.Activity, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var models []activityModel
	err := r.db.
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list activities by date: %w", err)
	}
	return toActivities(models), nil
}

// Create agrega una entrada; el autoincrement asigna el ID.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	model := &activityModel{
		ClientID:    activity.ClientID,
		Action:      activity.Action,
		ClientName:  activity.ClientName,
		Description: activity.Description,
		CreatedAt:   activity.CreatedAt,
	}
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	activity.ID = model.ID
	return nil
}

func toActivities(models []activityModel) []*entity.Activity {
	list := make([]*entity.Activity, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list
}
