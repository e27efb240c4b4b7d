package entities

import "time"

type OrderStatus string

const (
	OrderPublished  OrderStatus = "published"
	OrderAccepted   OrderStatus = "accepted"
	OrderRejected   OrderStatus = "rejected"
	OrderInProgress OrderStatus = "in_progress"
	OrderDelivered  OrderStatus = "delivered"
	OrderFinalized  OrderStatus = "finalized"
)

// orderTransitions единственный источник допустимых переходов заказа.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPublished:  {OrderAccepted, OrderRejected},
	OrderAccepted:   {OrderInProgress},
	OrderInProgress: {OrderDelivered},
	OrderDelivered:  {OrderFinalized},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPublished, OrderAccepted, OrderRejected, OrderInProgress, OrderDelivered, OrderFinalized:
		return true
	default:
		return false
	}
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// Engaged статусы, в которых заказ занимает слот перевозчика.
func (s OrderStatus) Engaged() bool {
	return s == OrderAccepted || s == OrderInProgress || s == OrderDelivered
}

type Cargo struct {
	Description           string
	WeightKg              float64
	VolumeM3              *float64
	RequiresRefrigeration bool
	RequiresHazmat        bool
}

type Order struct {
	ID              int64
	ShipperID       int64
	CarrierID       *int64
	TargetCarrierID *int64
	Cargo           Cargo
	Origin          Place
	Destination     Place
	Price           float64
	PickupFrom      *time.Time
	PickupTo        *time.Time
	DistanceKm      float64
	CO2EstimateKg   float64
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	FinalizedAt     *time.Time
}

// OrderModify входные данные публикации, все поля опциональны до валидации.
type OrderModify struct {
	Description           *string
	WeightKg              *float64
	VolumeM3              *float64
	RequiresRefrigeration *bool
	RequiresHazmat        *bool
	Origin                *Place
	Destination           *Place
	Price                 *float64
	PickupFrom            *time.Time
	PickupTo              *time.Time
	TargetCarrierID       *int64
}

// OrderPatch поля, которые меняются вместе со статусом.
type OrderPatch struct {
	CarrierID     *int64
	CO2EstimateKg *float64
	FinalizedAt   *time.Time
}

type OrderFilter struct {
	ShipperID *int64
	CarrierID *int64
	Status    *OrderStatus
}
