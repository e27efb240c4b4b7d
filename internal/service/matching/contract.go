//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"dispatch/internal/entities"
)

type CarrierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Carrier, error)
	GetAll(ctx context.Context) ([]entities.Carrier, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type TripRepository interface {
	List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error)
}

type EmissionFactory interface {
	EstimateKg(distanceKm float64, fuel entities.FuelType) float64
}
