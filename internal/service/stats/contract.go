//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error)
	FinalizedRevenue(ctx context.Context) (float64, error)
	CarrierTotals(ctx context.Context) (*entities.CarrierTotals, error)
}
