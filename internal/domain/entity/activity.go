package entity

import "time"

// Acciones válidas del registro de actividad.
const (
	ActionCreated        = "created"
	ActionUpdated        = "updated"
	ActionDeleted        = "deleted"
	ActionCodeAdded      = "code_added"
	ActionServiceAdded   = "service_added"
	ActionServiceUpdated = "service_updated"
	ActionServiceDeleted = "service_deleted"
)

// Activity es una entrada inmutable del historial de cambios (append-only).
// ClientID es nil cuando el sujeto no es un cliente (cambios del catálogo).
// ClientName es una instantánea del nombre al momento del evento: no cambia
// si el cliente se renombra o se elimina después.
type Activity struct {
	ID          int
	ClientID    *int
	Action      string
	ClientName  string
	Description string
	CreatedAt   time.Time
}
