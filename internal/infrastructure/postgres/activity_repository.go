package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación pgx del historial (append-only: solo insert y
// lecturas; las entradas nunca se modifican ni se borran).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// GetAll devuelve las actividades más recientes primero. limit <= 0 = sin tope.
func (r *ActivityRepo) GetAll(limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, client_id, action, client_name, description, created_at
		FROM activities ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Action, &a.ClientName, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByDate devuelve las actividades de un día calendario (zona del servidor).
func (r *ActivityRepo) GetByDate(day time.Time) ([]*entity.Activity, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	query := `
		SELECT id, client_id, action, client_name, description, created_at
		FROM activities
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list activities by date: %w", err)
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Action, &a.ClientName, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create agrega una entrada; el ID lo asigna la secuencia de la tabla.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (client_id, action, client_name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		activity.ClientID, activity.Action, activity.ClientName, activity.Description, activity.CreatedAt,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
