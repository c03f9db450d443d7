package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación pgx de ClientRepository. Los códigos de servicio
// se guardan embebidos en la columna JSONB codes, en orden de inserción.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), codes, created_at, updated_at`

// GetAll lista los clientes, el más recientemente modificado primero.
func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY updated_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Create persiste un cliente nuevo; el ID lo asigna la secuencia de la tabla
// y queda escrito en la entidad.
func (r *ClientRepo) Create(client *entity.Client) error {
	codes, err := marshalCodes(client.Codes)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO clients (name, phone, email, address, codes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
		RETURNING id`
	err = r.q.QueryRow(context.Background(), query,
		client.Name, nullIfEmpty(client.Phone), nullIfEmpty(client.Email), nullIfEmpty(client.Address),
		codes, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update reemplaza el registro completo (los parciales se resuelven en el
// caso de uso). Campos opcionales vacíos se escriben como NULL, no como
// cadena vacía.
func (r *ClientRepo) Update(client *entity.Client) error {
	codes, err := marshalCodes(client.Codes)
	if err != nil {
		return err
	}
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, address = $5, codes = $6::jsonb, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.Phone), nullIfEmpty(client.Email), nullIfEmpty(client.Address),
		codes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Devuelve false (sin error) si el ID no existía.
// El historial del cliente no se toca: las actividades son un log inmutable.
func (r *ClientRepo) Delete(id int) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var codesJSON []byte
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &codesJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	if err := json.Unmarshal(codesJSON, &c.Codes); err != nil {
		return nil, fmt.Errorf("decode codes: %w", err)
	}
	if c.Codes == nil {
		c.Codes = []entity.ServiceCode{}
	}
	return &c, nil
}

func marshalCodes(codes []entity.ServiceCode) (string, error) {
	if codes == nil {
		codes = []entity.ServiceCode{}
	}
	b, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("encode codes: %w", err)
	}
	return string(b), nil
}
