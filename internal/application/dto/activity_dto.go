package dto

import "time"

// ActivityResponse representación JSON de una entrada del historial.
// ClientID serializa como null cuando el evento no refiere a un cliente.
type ActivityResponse struct {
	ID          int       `json:"id"`
	ClientID    *int      `json:"clientId"`
	Action      string    `json:"action"`
	ClientName  string    `json:"clientName"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
