package stats

import (
	"context"
	"fmt"
	"math"

	"dispatch/internal/entities"
)

var orderStatuses = []entities.OrderStatus{
	entities.OrderPublished,
	entities.OrderAccepted,
	entities.OrderRejected,
	entities.OrderInProgress,
	entities.OrderDelivered,
	entities.OrderFinalized,
}

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Stats сводка движка: заказы по статусам, выручка, выбросы, средний рейтинг.
// В ответе есть все статусы заказа, даже с нулем.
func (s *Service) Stats(ctx context.Context) (*entities.EngineStats, error) {
	byStatus, err := s.repository.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	revenue, err := s.repository.FinalizedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	totals, err := s.repository.CarrierTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate carriers: %w", err)
	}

	stats := &entities.EngineStats{
		Carriers:       totals.Carriers,
		OrdersByStatus: make(map[entities.OrderStatus]int64, len(orderStatuses)),
		CompletedTrips: totals.CompletedTrips,
		TotalCO2Kg:     round2(totals.CO2Kg),
		TotalRevenue:   round2(revenue),
		AverageRating:  round2(totals.AverageRating),
	}
	for _, status := range orderStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for status, n := range byStatus {
		stats.OrdersByStatus[status] = n
		stats.OrdersTotal += n
		if status.Engaged() {
			stats.ActiveOrders += n
		}
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
