package dto

// StatisticsResponse resumen para el dashboard.
// ServiceBreakdown cuenta códigos por servicio a través de todos los clientes.
type StatisticsResponse struct {
	TotalClients     int            `json:"totalClients"`
	TotalCodes       int            `json:"totalCodes"`
	ClientsThisMonth int            `json:"clientsThisMonth"`
	ServiceBreakdown map[string]int `json:"serviceBreakdown"`
}
