package matching

import "dispatch/internal/entities"

// Границы подбора груза, км от перевозчика до точки загрузки.
const (
	HighTierMaxKm   = 200.0
	MediumTierMaxKm = 500.0
)

// Границы карты флота, км от центра.
const (
	GreenMaxKm  = 10.0
	YellowMaxKm = 50.0
)

// LoadMatchingTier классифицирует расстояние перевозчик -> загрузка.
func LoadMatchingTier(distanceKm float64) entities.ProximityTier {
	switch {
	case distanceKm < HighTierMaxKm:
		return entities.TierHigh
	case distanceKm < MediumTierMaxKm:
		return entities.TierMedium
	default:
		return entities.TierLow
	}
}

// FleetVisibilityTier классифицирует перевозчика на карте флота.
// Занятый перевозчик всегда red, независимо от расстояния.
func FleetVisibilityTier(distanceKm float64, available bool) entities.FleetTier {
	switch {
	case !available:
		return entities.FleetRed
	case distanceKm < GreenMaxKm:
		return entities.FleetGreen
	case distanceKm < YellowMaxKm:
		return entities.FleetYellow
	default:
		return entities.FleetOrange
	}
}
