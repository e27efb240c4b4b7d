package trip

import (
	"time"

	"dispatch/pkg/geo"
)

type TripDB struct {
	ID                  int64
	OrderID             int64
	CarrierID           int64
	ShipperID           int64
	OriginLat           float64
	OriginLng           float64
	OriginLabel         string
	DestinationLat      float64
	DestinationLng      float64
	DestinationLabel    string
	Route               []geo.Point
	DistanceTotalKm     float64
	DistanceTraveledKm  float64
	CurrentLat          *float64
	CurrentLng          *float64
	ElapsedMinutes      float64
	EstimatedMinutes    float64
	Stalled             bool
	StalledUrgent       bool
	StalledMinutes      float64
	TotalStalledMinutes float64
	StallEpisode        int
	LastSampleAt        *time.Time
	LastMovementAt      *time.Time
	LastMovementLat     *float64
	LastMovementLng     *float64
	StartedAt           time.Time
	ExpectedArrivalAt   time.Time
	DeliveredAt         *time.Time
	OnTime              *bool
	FinalizedAt         *time.Time
	Status              string
	UpdatedAt           time.Time
}
