package entities

import (
	"math"
	"time"
)

type TripStatus string

const (
	TripInProgress TripStatus = "in_progress"
	TripDelivered  TripStatus = "delivered"
	TripFinalized  TripStatus = "finalized"
)

var tripTransitions = map[TripStatus]TripStatus{
	TripInProgress: TripDelivered,
	TripDelivered:  TripFinalized,
}

func (s TripStatus) String() string {
	return string(s)
}

func (s TripStatus) Valid() bool {
	switch s {
	case TripInProgress, TripDelivered, TripFinalized:
		return true
	}
	return false
}

func (s TripStatus) CanTransitionTo(to TripStatus) bool {
	next, ok := tripTransitions[s]
	return ok && next == to
}

type Trip struct {
	ID        int64
	OrderID   int64
	CarrierID int64
	ShipperID int64

	Origin      Place
	Destination Place
	Route       []Point

	DistanceTotalKm    float64
	DistanceTraveledKm float64
	CurrentPosition    *Point

	ElapsedMinutes   float64
	EstimatedMinutes float64

	Stalled             bool
	StalledUrgent       bool
	StalledMinutes      float64
	TotalStalledMinutes float64
	StallEpisode        int

	LastSampleAt         *time.Time
	LastMovementAt       *time.Time
	LastMovementPosition *Point

	StartedAt         time.Time
	ExpectedArrivalAt time.Time
	DeliveredAt       *time.Time
	OnTime            *bool
	FinalizedAt       *time.Time

	Status    TripStatus
	UpdatedAt time.Time
}

// ProgressPercent всегда в [0, 100]; при нулевой дистанции 0.
func (t *Trip) ProgressPercent() float64 {
	return Progress(t.DistanceTraveledKm, t.DistanceTotalKm)
}

func (t *Trip) ETAMinutes() float64 {
	return math.Max(t.EstimatedMinutes-t.ElapsedMinutes, 0)
}

// FreeInMinutes сколько осталось до конца рейса на момент now. Доставленный
// рейс еще держит слот до подтверждения, но перевозчик уже свободен.
func (t *Trip) FreeInMinutes(now time.Time) float64 {
	if t.Status == TripDelivered {
		return 0
	}
	elapsed := now.Sub(t.StartedAt).Minutes()
	return math.Max(t.EstimatedMinutes-elapsed, 0)
}

func (t *Trip) RemainingKm() float64 {
	return math.Max(t.DistanceTotalKm-t.DistanceTraveledKm, 0)
}

func Progress(traveledKm, totalKm float64) float64 {
	if totalKm <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, traveledKm/totalKm*100))
}

type PositionSample struct {
	TripID    int64
	Position  Point
	Timestamp time.Time
}

type TripFilter struct {
	CarrierID *int64
	ShipperID *int64
	Status    *TripStatus
}

// TelemetryOutcome что движок сделал с отметкой.
type TelemetryOutcome string

const (
	SampleApplied    TelemetryOutcome = "applied"
	SampleDuplicate  TelemetryOutcome = "duplicate"
	SampleOutOfOrder TelemetryOutcome = "out_of_order"
)

type TelemetryUpdate struct {
	Trip      *Trip
	Outcome   TelemetryOutcome
	Crossings []Crossing
}

// Acceptance результат принятия предложения: заказ и открытый рейс.
type Acceptance struct {
	Order Order
	Trip  Trip
}
