package order

import (
	"math"
	"strings"

	"dispatch/internal/entities"
)

func validatePublish(m entities.OrderModify) error {
	if m.Description == nil || strings.TrimSpace(*m.Description) == "" {
		return entities.NewValidationError("description", "required")
	}
	if m.WeightKg == nil || !isPositive(*m.WeightKg) {
		return entities.NewValidationError("weight_kg", "must be positive")
	}
	if m.Price == nil || !isPositive(*m.Price) {
		return entities.NewValidationError("price", "must be positive")
	}
	if m.VolumeM3 != nil && !isPositive(*m.VolumeM3) {
		return entities.NewValidationError("volume_m3", "must be positive")
	}
	if m.Origin == nil {
		return entities.NewValidationError("origin", "required")
	}
	if !m.Origin.Valid() {
		return entities.NewValidationError("origin", "coordinates out of range")
	}
	if m.Destination == nil {
		return entities.NewValidationError("destination", "required")
	}
	if !m.Destination.Valid() {
		return entities.NewValidationError("destination", "coordinates out of range")
	}
	if m.Origin.Point == m.Destination.Point {
		return entities.NewValidationError("destination", "must differ from origin")
	}
	if m.PickupFrom != nil && m.PickupTo != nil && m.PickupTo.Before(*m.PickupFrom) {
		return entities.NewValidationError("pickup_to", "must not be before pickup_from")
	}
	return nil
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
