package usecase

import (
	"time"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
)

// StatsUseCase agrega los contadores del dashboard a partir del listado de
// clientes (lado de solo lectura; no toca el historial ni el catálogo).
type StatsUseCase struct {
	clients repository.ClientRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(clients repository.ClientRepository) *StatsUseCase {
	return &StatsUseCase{clients: clients}
}

// GetStatistics calcula totales de clientes y códigos, altas del mes en
// curso y el desglose de códigos por servicio.
func (uc *StatsUseCase) GetStatistics() (*dto.StatisticsResponse, error) {
	all, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &dto.StatisticsResponse{
		TotalClients:     len(all),
		ServiceBreakdown: map[string]int{},
	}
	for _, client := range all {
		stats.TotalCodes += len(client.Codes)
		if !client.CreatedAt.Before(monthStart) {
			stats.ClientsThisMonth++
		}
		for _, code := range client.Codes {
			stats.ServiceBreakdown[code.Service]++
		}
	}
	return stats, nil
}
