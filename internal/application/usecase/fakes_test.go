package usecase_test

import (
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Asignan IDs con un
// contador propio y copian las entidades en ambos sentidos para no
// compartir referencias con el código bajo prueba.

type memClients struct {
	seq   int
	items map[int]*entity.Client
}

func newMemClients() *memClients {
	return &memClients{items: map[int]*entity.Client{}}
}

func cloneClient(c *entity.Client) *entity.Client {
	cp := *c
	cp.Codes = append([]entity.ServiceCode{}, c.Codes...)
	return &cp
}

func (m *memClients) GetAll() ([]*entity.Client, error) {
	list := make([]*entity.Client, 0, len(m.items))
	for _, c := range m.items {
		list = append(list, cloneClient(c))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (m *memClients) GetByID(id int) (*entity.Client, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return cloneClient(c), nil
}

func (m *memClients) Create(c *entity.Client) error {
	m.seq++
	c.ID = m.seq
	m.items[c.ID] = cloneClient(c)
	return nil
}

func (m *memClients) Update(c *entity.Client) error {
	m.items[c.ID] = cloneClient(c)
	return nil
}

func (m *memClients) Delete(id int) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memActivities struct {
	seq     int
	items   []*entity.Activity
	failing bool // simula un almacén de historial caído
}

func newMemActivities() *memActivities { return &memActivities{} }

func (m *memActivities) GetAll(limit int) ([]*entity.Activity, error) {
	list := make([]*entity.Activity, len(m.items))
	copy(list, m.items)
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (m *memActivities) GetByDate(day time.Time) ([]*entity.Activity, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var list []*entity.Activity
	for _, a := range m.items {
		if !a.CreatedAt.Before(start) && a.CreatedAt.Before(end) {
			list = append(list, a)
		}
	}
	return list, nil
}

func (m *memActivities) Create(a *entity.Activity) error {
	if m.failing {
		return errors.New("almacén de historial caído")
	}
	m.seq++
	a.ID = m.seq
	cp := *a
	m.items = append(m.items, &cp)
	return nil
}

type memCatalog struct {
	seq   int
	items map[int]*entity.ServiceCodeConfig
}

func newMemCatalog() *memCatalog {
	return &memCatalog{items: map[int]*entity.ServiceCodeConfig{}}
}

func (m *memCatalog) sorted(activeOnly bool) []*entity.ServiceCodeConfig {
	var list []*entity.ServiceCodeConfig
	for _, c := range m.items {
		if activeOnly && c.IsActive != 1 {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func (m *memCatalog) GetAll() ([]*entity.ServiceCodeConfig, error) {
	return m.sorted(false), nil
}

func (m *memCatalog) GetActive() ([]*entity.ServiceCodeConfig, error) {
	return m.sorted(true), nil
}

func (m *memCatalog) GetByID(id int) (*entity.ServiceCodeConfig, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCatalog) GetByServiceID(serviceID string) (*entity.ServiceCodeConfig, error) {
	for _, c := range m.items {
		if c.ServiceID == serviceID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCatalog) Create(c *entity.ServiceCodeConfig) error {
	for _, existing := range m.items {
		if existing.ServiceID == c.ServiceID {
			return domain.ErrDuplicate
		}
	}
	m.seq++
	c.ID = m.seq
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCatalog) Update(c *entity.ServiceCodeConfig) error {
	cp := *c
	m.items[c.ID] = &cp
	return nil
}
