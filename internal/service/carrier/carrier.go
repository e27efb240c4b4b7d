package carrier

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"dispatch/internal/entities"
)

type Carrier struct {
	repository Repository
	orders     OrderRepository
	trips      TripRepository
	emission   EmissionEstimator
	txManager  TxManager
}

func New(
	repository Repository,
	orders OrderRepository,
	trips TripRepository,
	emission EmissionEstimator,
	txManager TxManager,
) *Carrier {
	return &Carrier{
		repository: repository,
		orders:     orders,
		trips:      trips,
		emission:   emission,
		txManager:  txManager,
	}
}

// CreateCarrier регистрирует перевозчика, путь для администратора и сидов.
func (s *Carrier) CreateCarrier(ctx context.Context, actor entities.Actor, m entities.CarrierModify) (*entities.Carrier, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, entities.NewForbiddenError(actor, "register carrier")
	}
	if m.Name == nil || !isValidName(*m.Name) {
		return nil, entities.NewValidationError("name", "required")
	}
	if m.Truck == nil {
		return nil, entities.NewValidationError("truck", "required")
	}
	if err := validateTruck(*m.Truck); err != nil {
		return nil, err
	}

	truck := *m.Truck
	truck.Plate = strings.ToUpper(strings.TrimSpace(truck.Plate))

	created, err := s.repository.Create(ctx, entities.Carrier{
		Name:      strings.TrimSpace(*m.Name),
		Available: m.Available == nil || *m.Available,
		Truck:     truck,
	})
	if err != nil {
		return nil, fmt.Errorf("create carrier: %w", err)
	}
	return created, nil
}

// UpdateCarrier меняет имя и профиль грузовика. Перевозчик правит только себя.
// Смена топлива пересчитывает оценку CO2 его незавершенных заказов в той же транзакции.
func (s *Carrier) UpdateCarrier(ctx context.Context, actor entities.Actor, m entities.CarrierModify) (*entities.Carrier, error) {
	if m.ID == nil {
		return nil, entities.NewValidationError("id", "required")
	}
	if actor.Role != entities.RoleAdmin && !actor.Is(entities.RoleCarrier, *m.ID) {
		return nil, entities.NewForbiddenError(actor, "update carrier")
	}
	if m.Name == nil && m.Available == nil && m.Truck == nil {
		return nil, entities.NewValidationError("carrier", "no fields to update")
	}

	if m.Name != nil && !isValidName(*m.Name) {
		return nil, entities.NewValidationError("name", "must not be blank")
	}
	if m.Truck != nil {
		if err := validateTruck(*m.Truck); err != nil {
			return nil, err
		}
		truck := *m.Truck
		truck.Plate = strings.ToUpper(strings.TrimSpace(truck.Plate))
		m.Truck = &truck
	}

	if m.Truck == nil {
		carrier, err := s.repository.Update(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("failed to update carrier: %w", err)
		}
		return carrier, nil
	}

	var carrier *entities.Carrier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		before, err := s.repository.GetByID(ctx, *m.ID)
		if err != nil {
			return fmt.Errorf("failed to update carrier: %w", err)
		}

		carrier, err = s.repository.Update(ctx, m)
		if err != nil {
			return fmt.Errorf("failed to update carrier: %w", err)
		}

		if before.Truck.Fuel == carrier.Truck.Fuel {
			return nil
		}
		return s.refreshEstimates(ctx, carrier.ID, carrier.Truck.Fuel)
	})
	if err != nil {
		return nil, err
	}
	return carrier, nil
}

func (s *Carrier) refreshEstimates(ctx context.Context, carrierID int64, fuel entities.FuelType) error {
	orders, err := s.orders.List(ctx, entities.OrderFilter{CarrierID: &carrierID})
	if err != nil {
		return fmt.Errorf("list carrier orders: %w", err)
	}

	for _, o := range orders {
		if !o.Status.Engaged() {
			continue
		}
		co2 := s.emission.EstimateKg(o.DistanceKm, fuel)
		if err := s.orders.UpdateCO2Estimate(ctx, o.ID, co2); err != nil {
			return fmt.Errorf("update co2 estimate of order %d: %w", o.ID, err)
		}
	}
	return nil
}

func (s *Carrier) UpdateAvailability(ctx context.Context, actor entities.Actor, available bool) (*entities.Carrier, error) {
	if actor.Role != entities.RoleCarrier {
		return nil, entities.NewForbiddenError(actor, "change availability")
	}

	carrier, err := s.repository.Update(ctx, entities.CarrierModify{ID: &actor.ID, Available: &available})
	if err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return carrier, nil
}

// ReportPosition ручная отметка позиции перевозчика вне рейса.
// Более старая отметка не затирает свежую.
func (s *Carrier) ReportPosition(ctx context.Context, actor entities.Actor, p entities.Point, at time.Time) (*entities.Carrier, error) {
	if actor.Role != entities.RoleCarrier {
		return nil, entities.NewForbiddenError(actor, "report position")
	}
	if !p.Valid() {
		return nil, entities.NewValidationError("position", "coordinates out of range")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var carrier *entities.Carrier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.UpdatePosition(ctx, actor.ID, p, at); err != nil {
			return fmt.Errorf("update position: %w", err)
		}

		var err error
		carrier, err = s.repository.GetByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("get carrier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return carrier, nil
}

func (s *Carrier) GetCarrier(ctx context.Context, id int64) (*entities.Carrier, error) {
	carrier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}
	return carrier, nil
}

func (s *Carrier) GetCarriers(ctx context.Context) ([]entities.Carrier, error) {
	carriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get carriers: %w", err)
	}
	return carriers, nil
}

// Stats счетчики перевозчика плюс выручка и пробег по завершенным заказам.
func (s *Carrier) Stats(ctx context.Context, id int64) (*entities.CarrierStats, error) {
	carrier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier stats: %w", err)
	}

	finalized := entities.OrderFinalized
	orders, err := s.orders.List(ctx, entities.OrderFilter{CarrierID: &id, Status: &finalized})
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier stats: %w", err)
	}

	inProgress := entities.TripInProgress
	trips, err := s.trips.List(ctx, entities.TripFilter{CarrierID: &id, Status: &inProgress})
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier stats: %w", err)
	}

	stats := &entities.CarrierStats{
		CarrierID:         carrier.ID,
		CompletedTrips:    carrier.CompletedTrips,
		InProgressTrips:   int64(len(trips)),
		CumulativeCO2Kg:   carrier.CumulativeCO2Kg,
		Rating:            carrier.Rating,
		RatingCount:       carrier.RatingCount,
		ActiveEngagements: carrier.ActiveEngagements,
	}
	for _, o := range orders {
		stats.TotalRevenue += o.Price
		stats.TotalDistanceKm += o.DistanceKm
	}
	stats.TotalRevenue = round2(stats.TotalRevenue)
	stats.TotalDistanceKm = round2(stats.TotalDistanceKm)

	if carrier.CompletedTrips > 0 {
		stats.CO2PerTripKg = round2(carrier.CumulativeCO2Kg / float64(carrier.CompletedTrips))
	}
	if len(orders) > 0 {
		stats.RevenuePerTrip = round2(stats.TotalRevenue / float64(len(orders)))
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
