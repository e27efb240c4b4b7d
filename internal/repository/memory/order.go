package memory

import (
	"context"
	"sort"

	"dispatch/internal/entities"
)

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ts := now()
	o = cloneOrder(o)
	o.ID = r.store.data.nextID()
	o.CreatedAt = ts
	o.UpdatedAt = ts
	r.store.data.orders[o.ID] = o

	out := cloneOrder(o)
	return &out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	o, ok := r.store.data.orders[id]
	if !ok {
		return nil, entities.NewNotFoundError("order", id)
	}
	out := cloneOrder(o)
	return &out, nil
}

func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := make([]entities.Order, 0)
	for _, o := range r.store.data.orders {
		if filter.ShipperID != nil && o.ShipperID != *filter.ShipperID {
			continue
		}
		if filter.CarrierID != nil && (o.CarrierID == nil || *o.CarrierID != *filter.CarrierID) {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		result = append(result, cloneOrder(o))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateStatus compare-and-set по статусу.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to entities.OrderStatus,
	patch entities.OrderPatch,
) (*entities.Order, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	o, ok := r.store.data.orders[id]
	if !ok {
		return nil, entities.NewNotFoundError("order", id)
	}
	if o.Status != from {
		return nil, entities.NewStateConflictError("order", id, o.Status.String(), to.String())
	}

	o.Status = to
	if patch.CarrierID != nil {
		o.CarrierID = clonePtr(patch.CarrierID)
	}
	if patch.CO2EstimateKg != nil {
		o.CO2EstimateKg = *patch.CO2EstimateKg
	}
	if patch.FinalizedAt != nil {
		o.FinalizedAt = clonePtr(patch.FinalizedAt)
	}
	o.UpdatedAt = now()
	r.store.data.orders[id] = o

	out := cloneOrder(o)
	return &out, nil
}

func (r *OrderRepository) UpdateCO2Estimate(ctx context.Context, id int64, co2Kg float64) error {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	o, ok := r.store.data.orders[id]
	if !ok {
		return entities.NewNotFoundError("order", id)
	}
	o.CO2EstimateKg = co2Kg
	o.UpdatedAt = now()
	r.store.data.orders[id] = o
	return nil
}
