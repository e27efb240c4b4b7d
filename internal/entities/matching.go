package entities

// ProximityTier уровень совпадения перевозчика с точкой погрузки.
type ProximityTier string

const (
	TierHigh    ProximityTier = "high"
	TierMedium  ProximityTier = "medium"
	TierLow     ProximityTier = "low"
	TierUnknown ProximityTier = "unknown"
)

// Rank порядок сортировки, unknown всегда последним.
func (t ProximityTier) Rank() int {
	switch t {
	case TierHigh:
		return 0
	case TierMedium:
		return 1
	case TierLow:
		return 2
	default:
		return 3
	}
}

// FleetTier цвет перевозчика на карте флота относительно центра.
type FleetTier string

const (
	FleetGreen   FleetTier = "green"
	FleetYellow  FleetTier = "yellow"
	FleetOrange  FleetTier = "orange"
	FleetRed     FleetTier = "red"
	FleetUnknown FleetTier = "unknown"
)

func (t FleetTier) Rank() int {
	switch t {
	case FleetGreen:
		return 0
	case FleetYellow:
		return 1
	case FleetOrange:
		return 2
	case FleetRed:
		return 3
	default:
		return 4
	}
}

// CandidateScore оценка пары перевозчик-груз.
type CandidateScore struct {
	Carrier       Carrier
	OrderID       int64
	DistanceKm    *float64
	Tier          ProximityTier
	Compatible    bool
	Reasons       []string
	CO2EstimateKg float64
}

type OfferScore struct {
	Order      Order
	DistanceKm float64
	Tier       ProximityTier
	Compatible bool
	Reasons    []string
}

type FleetEntry struct {
	Carrier       Carrier
	DistanceKm    *float64
	Tier          FleetTier
	FreeInMinutes *float64
}

// Incompatibilities причины, по которым грузовик не может взять груз; пусто если может.
func (t Truck) Incompatibilities(c Cargo) []string {
	var reasons []string
	if c.RequiresRefrigeration && !t.Refrigerated {
		reasons = append(reasons, "refrigeration required")
	}
	if c.RequiresHazmat && !t.Hazmat {
		reasons = append(reasons, "hazmat certification required")
	}
	if c.WeightKg > t.CapacityKg {
		reasons = append(reasons, "weight exceeds truck capacity")
	}
	if c.VolumeM3 != nil && t.VolumeM3 > 0 && *c.VolumeM3 > t.VolumeM3 {
		reasons = append(reasons, "volume exceeds truck capacity")
	}
	return reasons
}
