//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=engagement_test
package engagement

import (
	"context"

	"dispatch/internal/entities"
)

type CarrierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Carrier, error)
	// IncrementEngagements условный инкремент, false если лимит уже выбран
	IncrementEngagements(ctx context.Context, carrierID int64, limit int) (bool, error)
	DecrementEngagements(ctx context.Context, carrierID int64) error
}
