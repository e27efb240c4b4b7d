//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telemetry_test
package telemetry

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Trip, error)
	List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error)
	Update(ctx context.Context, trip entities.Trip, expected entities.TripStatus) (*entities.Trip, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatus, patch entities.OrderPatch) (*entities.Order, error)
}

type CarrierRepository interface {
	UpdatePosition(ctx context.Context, id int64, p entities.Point, at time.Time) error
}

type Notifier interface {
	EmitCrossings(ctx context.Context, trip *entities.Trip, crossings []entities.Crossing) error
}

type RateLimiter interface {
	Allow(key int64) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
