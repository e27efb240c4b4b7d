package memory

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/carrier"
)

type CarrierRepository struct {
	store *Store
}

func (r *CarrierRepository) Create(ctx context.Context, c entities.Carrier) (*entities.Carrier, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if r.plateTaken(c.Truck.Plate, 0) {
		return nil, carrier.ErrConflict
	}

	ts := now()
	c = cloneCarrier(c)
	c.ID = r.store.data.nextID()
	c.CreatedAt = ts
	c.UpdatedAt = ts
	c.ActiveEngagements = 0
	r.store.data.carriers[c.ID] = c

	out := cloneCarrier(c)
	return &out, nil
}

func (r *CarrierRepository) GetByID(ctx context.Context, id int64) (*entities.Carrier, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, ok := r.store.data.carriers[id]
	if !ok {
		return nil, entities.NewNotFoundError("carrier", id)
	}
	out := cloneCarrier(c)
	return &out, nil
}

func (r *CarrierRepository) GetAll(ctx context.Context) ([]entities.Carrier, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := make([]entities.Carrier, 0, len(r.store.data.carriers))
	for _, c := range r.store.data.carriers {
		result = append(result, cloneCarrier(c))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CarrierRepository) Update(ctx context.Context, m entities.CarrierModify) (*entities.Carrier, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if m.ID == nil {
		return nil, entities.NewValidationError("id", "required")
	}
	c, ok := r.store.data.carriers[*m.ID]
	if !ok {
		return nil, entities.NewNotFoundError("carrier", *m.ID)
	}

	if m.Name != nil {
		c.Name = *m.Name
	}
	if m.Available != nil {
		c.Available = *m.Available
	}
	if m.Truck != nil {
		if r.plateTaken(m.Truck.Plate, c.ID) {
			return nil, carrier.ErrConflict
		}
		c.Truck = *m.Truck
	}
	c.UpdatedAt = now()
	r.store.data.carriers[c.ID] = c

	out := cloneCarrier(c)
	return &out, nil
}

// UpdatePosition не перезаписывает более свежую позицию.
func (r *CarrierRepository) UpdatePosition(ctx context.Context, id int64, p entities.Point, at time.Time) error {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	c, ok := r.store.data.carriers[id]
	if !ok {
		return entities.NewNotFoundError("carrier", id)
	}
	if c.PositionUpdatedAt != nil && c.PositionUpdatedAt.After(at) {
		return nil
	}

	c.Position = &p
	c.PositionUpdatedAt = &at
	c.UpdatedAt = now()
	r.store.data.carriers[id] = c
	return nil
}

func (r *CarrierRepository) IncrementEngagements(ctx context.Context, carrierID int64, limit int) (bool, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	c, ok := r.store.data.carriers[carrierID]
	if !ok || c.ActiveEngagements >= limit {
		return false, nil
	}
	c.ActiveEngagements++
	c.UpdatedAt = now()
	r.store.data.carriers[carrierID] = c
	return true, nil
}

func (r *CarrierRepository) DecrementEngagements(ctx context.Context, carrierID int64) error {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	c, ok := r.store.data.carriers[carrierID]
	if !ok {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	if c.ActiveEngagements > 0 {
		c.ActiveEngagements--
	}
	c.UpdatedAt = now()
	r.store.data.carriers[carrierID] = c
	return nil
}

func (r *CarrierRepository) RecordCompletedTrip(ctx context.Context, carrierID int64, co2Kg float64) error {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	c, ok := r.store.data.carriers[carrierID]
	if !ok {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	c.CompletedTrips++
	c.CumulativeCO2Kg += co2Kg
	c.UpdatedAt = now()
	r.store.data.carriers[carrierID] = c
	return nil
}

func (r *CarrierRepository) ApplyRating(ctx context.Context, carrierID int64, score int) error {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	c, ok := r.store.data.carriers[carrierID]
	if !ok {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	c.Rating = (c.Rating*float64(c.RatingCount) + float64(score)) / float64(c.RatingCount+1)
	c.RatingCount++
	c.UpdatedAt = now()
	r.store.data.carriers[carrierID] = c
	return nil
}

func (r *CarrierRepository) plateTaken(plate string, except int64) bool {
	if plate == "" {
		return false
	}
	for id, c := range r.store.data.carriers {
		if id != except && c.Truck.Plate == plate {
			return true
		}
	}
	return false
}
