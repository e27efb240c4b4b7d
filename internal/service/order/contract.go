//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatus, patch entities.OrderPatch) (*entities.Order, error)
}

type TripRepository interface {
	Create(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Trip, error)
	List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error)
	Update(ctx context.Context, trip entities.Trip, expected entities.TripStatus) (*entities.Trip, error)
}

type CarrierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Carrier, error)
	RecordCompletedTrip(ctx context.Context, carrierID int64, co2Kg float64) error
}

type EngagementGuard interface {
	Reserve(ctx context.Context, carrierID int64) error
	Release(ctx context.Context, carrierID int64) error
}

type Notifier interface {
	OfferAccepted(ctx context.Context, order *entities.Order, trip *entities.Trip) error
	Delivered(ctx context.Context, order *entities.Order, trip *entities.Trip) error
	Finalized(ctx context.Context, order *entities.Order, trip *entities.Trip) error
}

type RoutingGateway interface {
	Route(ctx context.Context, from, to entities.Point) entities.Route
}

type EmissionFactory interface {
	EstimateKg(distanceKm float64, fuel entities.FuelType) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	// ExecuteFn побочные действия перехода, выполняются в транзакции перехода
	ExecuteFn      func(ctx context.Context, order *entities.Order, trip *entities.Trip) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatus) (ExecuteFn, error)
	}
)
