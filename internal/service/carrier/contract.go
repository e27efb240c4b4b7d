//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_test
package carrier

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, c entities.Carrier) (*entities.Carrier, error)
	GetByID(ctx context.Context, id int64) (*entities.Carrier, error)
	GetAll(ctx context.Context) ([]entities.Carrier, error)
	Update(ctx context.Context, m entities.CarrierModify) (*entities.Carrier, error)
	UpdatePosition(ctx context.Context, id int64, p entities.Point, at time.Time) error
}

type OrderRepository interface {
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateCO2Estimate(ctx context.Context, id int64, co2Kg float64) error
}

type TripRepository interface {
	List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error)
}

type EmissionEstimator interface {
	EstimateKg(distanceKm float64, fuel entities.FuelType) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
