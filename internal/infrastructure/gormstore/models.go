package gormstore

import (
	"time"

	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// clientModel fila de la tabla clients. Los opcionales son punteros: NULL en
// la base = campo ausente. Codes se serializa como JSON en una columna de
// texto (serializer de GORM).
type clientModel struct {
	ID        int     `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"not null"`
	Phone     *string
	Email     *string
	Address   *string
	Codes     []entity.ServiceCode `gorm:"serializer:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (clientModel) TableName() string { return "clients" }

func (m *clientModel) toEntity() *entity.Client {
	codes := m.Codes
	if codes == nil {
		codes = []entity.ServiceCode{}
	}
	return &entity.Client{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     deref(m.Phone),
		Email:     deref(m.Email),
		Address:   deref(m.Address),
		Codes:     codes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func clientFromEntity(c *entity.Client) *clientModel {
	codes := c.Codes
	if codes == nil {
		codes = []entity.ServiceCode{}
	}
	return &clientModel{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     nullIfEmpty(c.Phone),
		Email:     nullIfEmpty(c.Email),
		Address:   nullIfEmpty(c.Address),
		Codes:     codes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// activityModel fila de la tabla activities (append-only).
type activityModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	ClientID    *int
	Action      string `gorm:"not null"`
	ClientName  string `gorm:"not null"`
	Description string `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
}

func (activityModel) TableName() string { return "activities" }

func (m *activityModel) toEntity() *entity.Activity {
	return &entity.Activity{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Action:      m.Action,
		ClientName:  m.ClientName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// serviceCodeModel fila de la tabla service_codes (catálogo).
type serviceCodeModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	ServiceID string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Category  string `gorm:"not null"`
	IsActive  int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (serviceCodeModel) TableName() string { return "service_codes" }

func (m *serviceCodeModel) toEntity() *entity.ServiceCodeConfig {
	return &entity.ServiceCodeConfig{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		Name:      m.Name,
		Category:  m.Category,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func catalogFromEntity(c *entity.ServiceCodeConfig) *serviceCodeModel {
	return &serviceCodeModel{
		ID:        c.ID,
		ServiceID: c.ServiceID,
		Name:      c.Name,
		Category:  c.Category,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
