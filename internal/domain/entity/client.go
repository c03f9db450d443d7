package entity

import "time"

// ServiceCode es un código de cuenta externo (telecom o servicio público)
// asociado a un cliente. Se persiste embebido dentro del cliente como JSON,
// no como entidad de primer nivel. Los campos opcionales se omiten cuando
// están vacíos (ausente, no cadena vacía).
type ServiceCode struct {
	Service           string `json:"service"`
	Code              string `json:"code"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
	Address           string `json:"address,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
}

// Client representa un cliente con sus códigos de servicio.
// Phone, Email y Address son opcionales: cadena vacía = no presente.
// Codes conserva el orden de inserción; puede estar vacío y el almacén
// acepta servicios repetidos (la regla "un código por servicio" es de la UI).
type Client struct {
	ID        int
	Name      string
	Phone     string
	Email     string
	Address   string
	Codes     []ServiceCode
	CreatedAt time.Time
	UpdatedAt time.Time
}
