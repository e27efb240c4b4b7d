//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, r entities.Rating) (*entities.Rating, error)
	ListByCarrier(ctx context.Context, carrierID int64) ([]entities.Rating, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type CarrierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Carrier, error)
	ApplyRating(ctx context.Context, carrierID int64, score int) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
