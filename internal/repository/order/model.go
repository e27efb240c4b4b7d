package order

import "time"

type OrderDB struct {
	ID                    int64
	ShipperID             int64
	CarrierID             *int64
	TargetCarrierID       *int64
	Description           string
	WeightKg              float64
	VolumeM3              *float64
	RequiresRefrigeration bool
	RequiresHazmat        bool
	OriginLat             float64
	OriginLng             float64
	OriginLabel           string
	DestinationLat        float64
	DestinationLng        float64
	DestinationLabel      string
	Price                 float64
	PickupFrom            *time.Time
	PickupTo              *time.Time
	DistanceKm            float64
	CO2EstimateKg         float64
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	FinalizedAt           *time.Time
}
