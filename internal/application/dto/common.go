package dto

// ErrorResponse cuerpo de error HTTP.
// Error lleva el detalle interno y solo se incluye fuera de producción.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
