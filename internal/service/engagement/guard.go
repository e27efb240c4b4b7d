package engagement

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Guard следит за числом активных заказов перевозчика.
// Reserve должен вызываться внутри транзакции вызывающего: условный UPDATE
// блокирует строку перевозчика до конца транзакции.
type Guard struct {
	carriers CarrierRepository
	limit    int
}

func New(carriers CarrierRepository) *Guard {
	return &Guard{
		carriers: carriers,
		limit:    entities.MaxActiveEngagements,
	}
}

func (g *Guard) Reserve(ctx context.Context, carrierID int64) error {
	ok, err := g.carriers.IncrementEngagements(ctx, carrierID, g.limit)
	if err != nil {
		return fmt.Errorf("reserve engagement: %w", err)
	}
	if ok {
		EngagementDecisionsTotal.WithLabelValues("reserved").Inc()
		return nil
	}

	// ноль строк: либо лимит, либо перевозчика нет
	carrier, err := g.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return fmt.Errorf("reserve engagement: %w", err)
	}

	EngagementDecisionsTotal.WithLabelValues("limit_exceeded").Inc()
	return &entities.LimitExceededError{
		CarrierID: carrierID,
		Current:   carrier.ActiveEngagements,
		Limit:     g.limit,
	}
}

func (g *Guard) Release(ctx context.Context, carrierID int64) error {
	if err := g.carriers.DecrementEngagements(ctx, carrierID); err != nil {
		return fmt.Errorf("release engagement: %w", err)
	}
	EngagementDecisionsTotal.WithLabelValues("released").Inc()
	return nil
}

func (g *Guard) Active(ctx context.Context, carrierID int64) (int, error) {
	carrier, err := g.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return 0, fmt.Errorf("active engagements: %w", err)
	}
	return carrier.ActiveEngagements, nil
}
