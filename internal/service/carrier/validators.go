package carrier

import (
	"math"
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPlate латиница и цифры, от 5 до 10 символов (AB123CD, ABC123)
func isValidPlate(plate string) bool {
	plate = strings.TrimSpace(plate)
	if len(plate) < 5 || len(plate) > 10 {
		return false
	}

	for _, char := range plate {
		isLetter := (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z')
		isDigit := char >= '0' && char <= '9'
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateTruck(t entities.Truck) error {
	if !isValidPlate(t.Plate) {
		return entities.NewValidationError("truck.plate", "letters and digits, 5 to 10 characters")
	}
	if !isFinite(t.CapacityKg) || t.CapacityKg <= 0 {
		return entities.NewValidationError("truck.capacity_kg", "must be positive")
	}
	if !isFinite(t.VolumeM3) || t.VolumeM3 < 0 {
		return entities.NewValidationError("truck.volume_m3", "must not be negative")
	}
	if !t.Fuel.Valid() {
		return entities.NewValidationError("truck.fuel_type", "unknown fuel type")
	}
	return nil
}
