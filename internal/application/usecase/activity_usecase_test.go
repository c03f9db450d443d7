package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/pkg/logger"
)

func TestActivityList_TopePorDefecto(t *testing.T) {
	activities := newMemActivities()
	uc := usecase.NewActivityUseCase(activities, logger.Nop())

	for i := 0; i < 120; i++ {
		id := i + 1
		_, err := uc.Record(entity.ActionCreated, &id, fmt.Sprintf("Cliente %d", id), "Created client")
		require.NoError(t, err)
	}

	list, err := uc.List(0)
	require.NoError(t, err)
	assert.Len(t, list, 100, "limit <= 0 aplica el tope del feed")

	list, err = uc.List(5)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	// Más reciente primero: la última entrada registrada encabeza.
	assert.Equal(t, "Cliente 120", list[0].ClientName)
}

func TestActivityListByDate(t *testing.T) {
	activities := newMemActivities()
	uc := usecase.NewActivityUseCase(activities, logger.Nop())

	id := 1
	_, err := uc.Record(entity.ActionCreated, &id, "Ahmed", "Created client Ahmed")
	require.NoError(t, err)

	// Entrada de ayer, insertada por debajo del caso de uso.
	yesterday := &entity.Activity{
		ClientID:    &id,
		Action:      entity.ActionUpdated,
		ClientName:  "Ahmed",
		Description: "Updated client information",
		CreatedAt:   time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, activities.Create(yesterday))

	today, err := uc.ListByDate(time.Now())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, entity.ActionCreated, today[0].Action)

	before, err := uc.ListByDate(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, entity.ActionUpdated, before[0].Action)
}
