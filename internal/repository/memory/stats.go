package memory

import (
	"context"

	"dispatch/internal/entities"
)

type StatsRepository struct {
	store *Store
}

func (r *StatsRepository) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	counts := make(map[entities.OrderStatus]int64)
	for _, o := range r.store.data.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *StatsRepository) FinalizedRevenue(ctx context.Context) (float64, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	var revenue float64
	for _, o := range r.store.data.orders {
		if o.Status == entities.OrderFinalized {
			revenue += o.Price
		}
	}
	return revenue, nil
}

func (r *StatsRepository) CarrierTotals(ctx context.Context) (*entities.CarrierTotals, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		totals    entities.CarrierTotals
		ratingSum float64
		rated     int
	)
	for _, c := range r.store.data.carriers {
		totals.Carriers++
		totals.CompletedTrips += c.CompletedTrips
		totals.CO2Kg += c.CumulativeCO2Kg
		if c.RatingCount > 0 {
			ratingSum += c.Rating
			rated++
		}
	}
	if rated > 0 {
		totals.AverageRating = ratingSum / float64(rated)
	}
	return &totals, nil
}
