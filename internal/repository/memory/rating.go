package memory

import (
	"context"
	"sort"

	"dispatch/internal/entities"
	"dispatch/internal/service/rating"
)

type RatingRepository struct {
	store *Store
}

func (r *RatingRepository) Create(ctx context.Context, rt entities.Rating) (*entities.Rating, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, ok := r.store.data.ratingByOrder[rt.OrderID]; ok {
		return nil, rating.ErrAlreadyRated
	}

	rt = cloneRating(rt)
	rt.ID = r.store.data.nextID()
	rt.CreatedAt = now()
	r.store.data.ratings[rt.ID] = rt
	r.store.data.ratingByOrder[rt.OrderID] = rt.ID

	out := cloneRating(rt)
	return &out, nil
}

func (r *RatingRepository) ListByCarrier(ctx context.Context, carrierID int64) ([]entities.Rating, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := make([]entities.Rating, 0)
	for _, rt := range r.store.data.ratings {
		if rt.CarrierID == carrierID {
			result = append(result, cloneRating(rt))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}
