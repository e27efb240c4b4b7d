package memory

import (
	"slices"
	"time"

	"dispatch/internal/entities"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCarrier(c entities.Carrier) entities.Carrier {
	c.Position = clonePtr(c.Position)
	c.PositionUpdatedAt = clonePtr(c.PositionUpdatedAt)
	return c
}

func cloneOrder(o entities.Order) entities.Order {
	o.CarrierID = clonePtr(o.CarrierID)
	o.TargetCarrierID = clonePtr(o.TargetCarrierID)
	o.Cargo.VolumeM3 = clonePtr(o.Cargo.VolumeM3)
	o.PickupFrom = clonePtr(o.PickupFrom)
	o.PickupTo = clonePtr(o.PickupTo)
	o.FinalizedAt = clonePtr(o.FinalizedAt)
	return o
}

func cloneTrip(t entities.Trip) entities.Trip {
	t.Route = slices.Clone(t.Route)
	t.CurrentPosition = clonePtr(t.CurrentPosition)
	t.LastSampleAt = clonePtr(t.LastSampleAt)
	t.LastMovementAt = clonePtr(t.LastMovementAt)
	t.LastMovementPosition = clonePtr(t.LastMovementPosition)
	t.DeliveredAt = clonePtr(t.DeliveredAt)
	t.OnTime = clonePtr(t.OnTime)
	t.FinalizedAt = clonePtr(t.FinalizedAt)
	return t
}

func cloneRating(r entities.Rating) entities.Rating {
	r.Punctuality = clonePtr(r.Punctuality)
	r.CargoCare = clonePtr(r.CargoCare)
	r.Communication = clonePtr(r.Communication)
	return r
}

func now() time.Time {
	return time.Now().UTC()
}
