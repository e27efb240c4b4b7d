package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"

	"github.com/AlekSi/pointer"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	carriers CarrierRepository
	orders   OrderRepository
	trips    TripRepository
	emission EmissionFactory
	now      func() time.Time
}

func New(carriers CarrierRepository, orders OrderRepository, trips TripRepository, emission EmissionFactory) *Service {
	return &Service{
		carriers: carriers,
		orders:   orders,
		trips:    trips,
		emission: emission,
		now:      time.Now,
	}
}

// RankCandidates доступные перевозчики со свободным слотом, отсортированные для груза.
func (s *Service) RankCandidates(ctx context.Context, orderID int64) ([]entities.CandidateScore, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	carriers, err := s.carriers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get carriers: %w", err)
	}

	result := make([]entities.CandidateScore, 0, len(carriers))
	for _, c := range carriers {
		if !c.Available || !c.HasFreeSlot() {
			continue
		}
		if order.TargetCarrierID != nil && *order.TargetCarrierID != c.ID {
			continue
		}
		result = append(result, s.score(order, c))
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Compatible != b.Compatible {
			return a.Compatible
		}
		if a.Tier.Rank() != b.Tier.Rank() {
			return a.Tier.Rank() < b.Tier.Rank()
		}
		if da, db := distanceOrInf(a.DistanceKm), distanceOrInf(b.DistanceKm); da != db {
			return da < db
		}
		if a.Carrier.Rating != b.Carrier.Rating {
			return a.Carrier.Rating > b.Carrier.Rating
		}
		return a.Carrier.ID < b.Carrier.ID
	})

	return result, nil
}

func (s *Service) ScoreCarrier(ctx context.Context, orderID, carrierID int64) (*entities.CandidateScore, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	carrier, err := s.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return nil, fmt.Errorf("get carrier: %w", err)
	}

	if carrier.Position == nil {
		return nil, &entities.StaleLocationError{CarrierID: carrierID}
	}

	score := s.score(order, *carrier)
	return &score, nil
}

// OffersForCarrier опубликованные грузы глазами перевозчика.
// Адресные предложения другим перевозчикам не показываются.
func (s *Service) OffersForCarrier(ctx context.Context, carrierID int64) ([]entities.OfferScore, error) {
	carrier, err := s.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return nil, fmt.Errorf("get carrier: %w", err)
	}
	if carrier.Position == nil {
		return nil, &entities.StaleLocationError{CarrierID: carrierID}
	}

	published := entities.OrderPublished
	orders, err := s.orders.List(ctx, entities.OrderFilter{Status: &published})
	if err != nil {
		return nil, fmt.Errorf("list published orders: %w", err)
	}

	result := make([]entities.OfferScore, 0, len(orders))
	for _, o := range orders {
		if o.TargetCarrierID != nil && *o.TargetCarrierID != carrierID {
			continue
		}

		distance := geo.DistanceKm(*carrier.Position, o.Origin.Point)
		reasons := carrier.Truck.Incompatibilities(o.Cargo)
		result = append(result, entities.OfferScore{
			Order:      o,
			DistanceKm: distance,
			Tier:       LoadMatchingTier(distance),
			Compatible: len(reasons) == 0,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Compatible != b.Compatible {
			return a.Compatible
		}
		if a.Tier.Rank() != b.Tier.Rank() {
			return a.Tier.Rank() < b.Tier.Rank()
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		return a.Order.ID < b.Order.ID
	})

	return result, nil
}

// NearbyCarriers карта флота вокруг center. FreeInMinutes считается на момент
// запроса от начала рейсов, которые занимают слоты перевозчика.
func (s *Service) NearbyCarriers(ctx context.Context, center entities.Point) ([]entities.FleetEntry, error) {
	if !center.Valid() {
		return nil, entities.NewValidationError("center", "coordinates out of range")
	}

	var (
		carriers  []entities.Carrier
		active    []entities.Trip
		delivered []entities.Trip
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		carriers, err = s.carriers.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("get carriers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		active, err = s.trips.List(gCtx, entities.TripFilter{Status: pointer.To(entities.TripInProgress)})
		if err != nil {
			return fmt.Errorf("list active trips: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		delivered, err = s.trips.List(gCtx, entities.TripFilter{Status: pointer.To(entities.TripDelivered)})
		if err != nil {
			return fmt.Errorf("list delivered trips: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	freeIn := make(map[int64]float64, len(active)+len(delivered))
	for _, trips := range [][]entities.Trip{active, delivered} {
		for i := range trips {
			eta := trips[i].FreeInMinutes(now)
			if current, ok := freeIn[trips[i].CarrierID]; !ok || eta < current {
				freeIn[trips[i].CarrierID] = eta
			}
		}
	}

	result := make([]entities.FleetEntry, 0, len(carriers))
	for _, c := range carriers {
		entry := entities.FleetEntry{Carrier: c, Tier: entities.FleetUnknown}
		if c.Position != nil {
			distance := geo.DistanceKm(center, *c.Position)
			entry.DistanceKm = &distance
			entry.Tier = FleetVisibilityTier(distance, c.Available)
		}
		if eta, ok := freeIn[c.ID]; ok {
			entry.FreeInMinutes = &eta
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Tier.Rank() != b.Tier.Rank() {
			return a.Tier.Rank() < b.Tier.Rank()
		}
		if da, db := distanceOrInf(a.DistanceKm), distanceOrInf(b.DistanceKm); da != db {
			return da < db
		}
		return a.Carrier.ID < b.Carrier.ID
	})

	return result, nil
}

func (s *Service) score(order *entities.Order, c entities.Carrier) entities.CandidateScore {
	reasons := c.Truck.Incompatibilities(order.Cargo)
	score := entities.CandidateScore{
		Carrier:       c,
		OrderID:       order.ID,
		Tier:          entities.TierUnknown,
		Compatible:    len(reasons) == 0,
		Reasons:       reasons,
		CO2EstimateKg: s.emission.EstimateKg(order.DistanceKm, c.Truck.Fuel),
	}

	if c.Position != nil {
		distance := geo.DistanceKm(*c.Position, order.Origin.Point)
		score.DistanceKm = &distance
		score.Tier = LoadMatchingTier(distance)
	}
	return score
}

func distanceOrInf(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}
	return *d
}
