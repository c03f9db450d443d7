package usecase

import (
	"time"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
	"github.com/jhoicas/gestion-clientes/pkg/logger"
)

// El feed completo de actividades se acota a las últimas 100 entradas.
const activityFeedLimit = 100

// ActivityUseCase registra y consulta el historial de cambios.
//
// El registro es best-effort: una escritura fallida del historial se reporta
// como warning en el log y NO revierte ni hace fallar la mutación que la
// originó. Los demás casos de uso llaman a Record después de persistir.
type ActivityUseCase struct {
	activities repository.ActivityRepository
	log        *logger.Logger
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(activities repository.ActivityRepository, log *logger.Logger) *ActivityUseCase {
	return &ActivityUseCase{activities: activities, log: log}
}

// Record agrega una entrada al historial. clientID en nil indica que el
// sujeto no es un cliente (cambios del catálogo). Devuelve la entrada
// persistida; en caso de fallo del almacén deja warning y retorna el error
// para quien sí quiera tratarlo.
func (uc *ActivityUseCase) Record(action string, clientID *int, clientName, description string) (*entity.Activity, error) {
	activity := &entity.Activity{
		ClientID:    clientID,
		Action:      action,
		ClientName:  clientName,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.activities.Create(activity); err != nil {
		uc.log.Warn().Err(err).
			Str("action", action).
			Str("client_name", clientName).
			Msg("no se pudo registrar la actividad")
		return nil, err
	}
	return activity, nil
}

// List devuelve las actividades más recientes. limit <= 0 aplica el tope
// por defecto del feed (100).
func (uc *ActivityUseCase) List(limit int) ([]*dto.ActivityResponse, error) {
	if limit <= 0 {
		limit = activityFeedLimit
	}
	list, err := uc.activities.GetAll(limit)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(list), nil
}

// ListByDate devuelve las actividades de un día calendario.
func (uc *ActivityUseCase) ListByDate(day time.Time) ([]*dto.ActivityResponse, error) {
	list, err := uc.activities.GetByDate(day)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(list), nil
}

func toActivityResponses(list []*entity.Activity) []*dto.ActivityResponse {
	out := make([]*dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.ActivityResponse{
			ID:          a.ID,
			ClientID:    a.ClientID,
			Action:      a.Action,
			ClientName:  a.ClientName,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}
