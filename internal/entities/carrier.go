package entities

import "time"

// MaxActiveEngagements сколько заказов перевозчик может вести одновременно
// (accepted, in_progress и delivered до подтверждения).
const MaxActiveEngagements = 2

type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
	FuelGasoline FuelType = "gasoline"
)

const DefaultFuelType = FuelDiesel

func (f FuelType) String() string {
	return string(f)
}

func (f FuelType) Valid() bool {
	switch f {
	case FuelDiesel, FuelCNG, FuelElectric, FuelGasoline:
		return true
	default:
		return false
	}
}

type Truck struct {
	Plate        string
	CapacityKg   float64
	VolumeM3     float64
	Fuel         FuelType
	Refrigerated bool
	Hazmat       bool
}

type Carrier struct {
	ID                int64
	Name              string
	Position          *Point
	PositionUpdatedAt *time.Time
	Available         bool
	Truck             Truck
	Rating            float64
	RatingCount       int64
	CompletedTrips    int64
	CumulativeCO2Kg   float64
	ActiveEngagements int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (c *Carrier) HasFreeSlot() bool {
	return c.ActiveEngagements < MaxActiveEngagements
}

type CarrierModify struct {
	ID        *int64
	Name      *string
	Available *bool
	Truck     *Truck
}

type CarrierStats struct {
	CarrierID         int64
	CompletedTrips    int64
	InProgressTrips   int64
	CumulativeCO2Kg   float64
	CO2PerTripKg      float64
	TotalRevenue      float64
	RevenuePerTrip    float64
	TotalDistanceKm   float64
	Rating            float64
	RatingCount       int64
	ActiveEngagements int
}
