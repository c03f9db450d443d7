package entity

import "time"

// Categorías que ofrece la UI para el catálogo (el campo es texto abierto).
const (
	CategoryTelecom = "telecom"
	CategoryUtility = "utility"
	CategoryOther   = "other"
)

// ServiceCodeConfig es una entrada del catálogo de servicios disponibles
// (operadoras telecom y servicios públicos). ServiceID es la clave de
// negocio (única) a la que apuntan los ServiceCode de los clientes.
// IsActive usa 0/1: las entradas en 0 quedan fuera del listado de servicios
// disponibles pero se conservan (borrado suave).
type ServiceCodeConfig struct {
	ID        int
	ServiceID string
	Name      string
	Category  string
	IsActive  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
