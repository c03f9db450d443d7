package gormstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/gestion-clientes/internal/domain"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// Una base SQLite en archivo por test. :memory: no sirve con el pool de GORM
// (cada conexión vería una base distinta).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestClientRepo_RoundTrip(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	now := time.Now()
	client := &entity.Client{
		Name:  "Ahmed Benali",
		Phone: "0612345678",
		Codes: []entity.ServiceCode{
			{Service: "inwi", Code: "0612345678"},
			{Service: "electricity", Code: "EL-778", AccountHolderName: "Ahmed B"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(client))
	assert.Equal(t, 1, client.ID, "el autoincrement arranca en 1")

	got, err := repo.GetByID(client.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ahmed Benali", got.Name)
	assert.Equal(t, "0612345678", got.Phone)
	assert.Empty(t, got.Email, "NULL vuelve como cadena vacía")
	assert.Equal(t, client.Codes, got.Codes, "los codes sobreviven el JSON con su orden")
}

func TestClientRepo_IDsSecuenciales(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	for i := 1; i <= 3; i++ {
		c := &entity.Client{Name: "Cliente", Codes: []entity.ServiceCode{},
			CreatedAt: time.Now(), UpdatedAt: time.Now()}
		require.NoError(t, repo.Create(c))
		assert.Equal(t, i, c.ID)
	}
}

// GetAll ordena por updated_at descendente.
func TestClientRepo_GetAllOrden(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	base := time.Now().Truncate(time.Second)
	first := &entity.Client{Name: "Primero", Codes: []entity.ServiceCode{},
		CreatedAt: base, UpdatedAt: base}
	second := &entity.Client{Name: "Segundo", Codes: []entity.ServiceCode{},
		CreatedAt: base, UpdatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	list, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Segundo", list[0].Name)
}

// Update con Save escribe también los NULL: borrar un opcional persiste.
func TestClientRepo_UpdateBorraOpcional(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	client := &entity.Client{Name: "Youssef", Phone: "0622222222",
		Codes: []entity.ServiceCode{}, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(client))

	client.Phone = ""
	client.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(client))

	got, err := repo.GetByID(client.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Phone)
}

func TestClientRepo_Inexistente(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	got, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got, "no encontrado es (nil, nil), no un error")

	deleted, err := repo.Delete(42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClientRepo_Delete(t *testing.T) {
	repo := NewClientRepository(openTestDB(t))

	client := &entity.Client{Name: "Amina", Codes: []entity.ServiceCode{},
		CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(client))

	deleted, err := repo.Delete(client.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(client.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestActivityRepo_LimiteYOrden(t *testing.T) {
	repo := NewActivityRepository(openTestDB(t))

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		id := i + 1
		require.NoError(t, repo.Create(&entity.Activity{
			ClientID:    &id,
			Action:      entity.ActionCreated,
			ClientName:  "Cliente",
			Description: "Created client",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	list, err := repo.GetAll(3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 5, list[0].ID, "más reciente primero")

	all, err := repo.GetAll(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestActivityRepo_GetByDate(t *testing.T) {
	repo := NewActivityRepository(openTestDB(t))

	require.NoError(t, repo.Create(&entity.Activity{
		Action: entity.ActionServiceAdded, ClientName: "System",
		Description: "Added new service: Fibre (telecom)",
		CreatedAt:   time.Now(),
	}))
	require.NoError(t, repo.Create(&entity.Activity{
		Action: entity.ActionServiceUpdated, ClientName: "System",
		Description: "Updated service: Fibre",
		CreatedAt:   time.Now().Add(-48 * time.Hour),
	}))

	today, err := repo.GetByDate(time.Now())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, entity.ActionServiceAdded, today[0].Action)
	assert.Nil(t, today[0].ClientID)
}

func TestServiceCatalogRepo_ServiceIDUnico(t *testing.T) {
	repo := NewServiceCatalogRepository(openTestDB(t))

	now := time.Now()
	first := &entity.ServiceCodeConfig{ServiceID: "inwi", Name: "Inwi",
		Category: entity.CategoryTelecom, IsActive: 1, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(first))

	dup := &entity.ServiceCodeConfig{ServiceID: "inwi", Name: "Otro",
		Category: entity.CategoryTelecom, IsActive: 1, CreatedAt: now, UpdatedAt: now}
	assert.ErrorIs(t, repo.Create(dup), domain.ErrDuplicate)

	got, err := repo.GetByServiceID("inwi")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Inwi", got.Name)
}

func TestServiceCatalogRepo_ActivosYSuaves(t *testing.T) {
	repo := NewServiceCatalogRepository(openTestDB(t))

	now := time.Now()
	active := &entity.ServiceCodeConfig{ServiceID: "water", Name: "Water",
		Category: entity.CategoryUtility, IsActive: 1, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(active))

	retired := &entity.ServiceCodeConfig{ServiceID: "gas", Name: "Gas",
		Category: entity.CategoryUtility, IsActive: 1, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(retired))

	// Desactivar vía Update, no hay Delete en el contrato.
	retired.IsActive = 0
	require.NoError(t, repo.Update(retired))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	actives, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, "water", actives[0].ServiceID)

	got, err := repo.GetByID(retired.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.IsActive)
}
