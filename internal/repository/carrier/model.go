package carrier

import "time"

type CarrierDB struct {
	ID                int64
	Name              string
	Lat               *float64
	Lng               *float64
	PositionUpdatedAt *time.Time
	Available         bool
	TruckPlate        string
	TruckCapacityKg   float64
	TruckVolumeM3     float64
	FuelType          string
	Refrigerated      bool
	Hazmat            bool
	Rating            float64
	RatingCount       int64
	CompletedTrips    int64
	CumulativeCO2Kg   float64
	ActiveEngagements int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CarrierModifyDB struct {
	ID              *int64
	Name            *string
	Available       *bool
	TruckPlate      *string
	TruckCapacityKg *float64
	TruckVolumeM3   *float64
	FuelType        *string
	Refrigerated    *bool
	Hazmat          *bool
}
