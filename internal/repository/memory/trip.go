package memory

import (
	"context"
	"sort"

	"dispatch/internal/entities"
)

type TripRepository struct {
	store *Store
}

func (r *TripRepository) Create(ctx context.Context, t entities.Trip) (*entities.Trip, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, existing := range r.store.data.trips {
		if existing.OrderID == t.OrderID {
			return nil, entities.NewStateConflictError("order", t.OrderID, "has trip", "new trip")
		}
	}

	t = cloneTrip(t)
	t.ID = r.store.data.nextID()
	t.UpdatedAt = now()
	r.store.data.trips[t.ID] = t

	out := cloneTrip(t)
	return &out, nil
}

func (r *TripRepository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, ok := r.store.data.trips[id]
	if !ok {
		return nil, entities.NewNotFoundError("trip", id)
	}
	out := cloneTrip(t)
	return &out, nil
}

// GetByIDForUpdate в памяти блокировкой служит мьютекс транзакции.
func (r *TripRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Trip, error) {
	return r.GetByID(ctx, id)
}

func (r *TripRepository) GetByOrderID(ctx context.Context, orderID int64) (*entities.Trip, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, t := range r.store.data.trips {
		if t.OrderID == orderID {
			out := cloneTrip(t)
			return &out, nil
		}
	}
	return nil, entities.NewNotFoundError("trip for order", orderID)
}

func (r *TripRepository) List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := make([]entities.Trip, 0)
	for _, t := range r.store.data.trips {
		if filter.CarrierID != nil && t.CarrierID != *filter.CarrierID {
			continue
		}
		if filter.ShipperID != nil && t.ShipperID != *filter.ShipperID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		result = append(result, cloneTrip(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update перезаписывает изменяемые поля рейса, если статус в хранилище равен expected.
func (r *TripRepository) Update(ctx context.Context, t entities.Trip, expected entities.TripStatus) (*entities.Trip, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	stored, ok := r.store.data.trips[t.ID]
	if !ok {
		return nil, entities.NewNotFoundError("trip", t.ID)
	}
	if stored.Status != expected {
		return nil, entities.NewStateConflictError("trip", t.ID, stored.Status.String(), t.Status.String())
	}

	// неизменяемые поля берем из хранилища
	t = cloneTrip(t)
	t.OrderID = stored.OrderID
	t.CarrierID = stored.CarrierID
	t.ShipperID = stored.ShipperID
	t.Origin = stored.Origin
	t.Destination = stored.Destination
	t.Route = stored.Route
	t.DistanceTotalKm = stored.DistanceTotalKm
	t.EstimatedMinutes = stored.EstimatedMinutes
	t.StartedAt = stored.StartedAt
	t.ExpectedArrivalAt = stored.ExpectedArrivalAt
	t.UpdatedAt = now()
	r.store.data.trips[t.ID] = t

	out := cloneTrip(t)
	return &out, nil
}
