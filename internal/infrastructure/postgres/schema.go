package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Los IDs los genera la secuencia de cada tabla (BIGSERIAL): la asignación
// es atómica en el servidor, sin leer-el-máximo-y-sumar-uno.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT,
	email TEXT,
	address TEXT,
	codes JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS activities (
	id BIGSERIAL PRIMARY KEY,
	client_id BIGINT,
	action TEXT NOT NULL,
	client_name TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities (created_at DESC);

CREATE TABLE IF NOT EXISTS service_codes (
	id BIGSERIAL PRIMARY KEY,
	service_id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema crea las tablas si no existen (despliegue de un solo binario,
// sin herramienta de migraciones aparte).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
