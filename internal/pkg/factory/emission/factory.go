package emission

import (
	"math"

	"dispatch/internal/entities"
)

// ConsumptionLitersPerKm средний расход грузовика.
const ConsumptionLitersPerKm = 0.35

// кг CO2 на литр (для электро - на эквивалент)
const (
	factorDiesel   = 2.68
	factorCNG      = 2.2
	factorElectric = 0.5
	factorGasoline = 2.3
)

type EmissionFactory struct{}

func New() *EmissionFactory {
	return &EmissionFactory{}
}

// Factor коэффициент выбросов для топлива; неизвестное топливо считается дизелем.
func (e *EmissionFactory) Factor(fuel entities.FuelType) float64 {
	switch fuel {
	case entities.FuelDiesel:
		return factorDiesel
	case entities.FuelCNG:
		return factorCNG
	case entities.FuelElectric:
		return factorElectric
	case entities.FuelGasoline:
		return factorGasoline
	default:
		return factorDiesel
	}
}

// EstimateKg оценка выбросов за рейс, округленная до 0.01 кг.
// Чистая функция, накопленные суммы перевозчика не трогает.
func (e *EmissionFactory) EstimateKg(distanceKm float64, fuel entities.FuelType) float64 {
	if distanceKm <= 0 {
		return 0
	}
	raw := distanceKm * ConsumptionLitersPerKm * e.Factor(fuel)
	return math.Round(raw*100) / 100
}
