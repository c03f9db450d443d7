package dto

import "time"

// CreateServiceCodeRequest entrada de POST /api/service-codes.
// IsActive en nil equivale a 1 (activo).
type CreateServiceCodeRequest struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsActive  *int   `json:"isActive"`
}

// UpdateServiceCodeRequest entrada de PATCH /api/service-codes/:id.
type UpdateServiceCodeRequest struct {
	ServiceID *string `json:"serviceId"`
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	IsActive  *int    `json:"isActive"`
}

// ServiceCodeConfigResponse representación JSON de una entrada del catálogo.
type ServiceCodeConfigResponse struct {
	ID        int       `json:"id"`
	ServiceID string    `json:"serviceId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsActive  int       `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
