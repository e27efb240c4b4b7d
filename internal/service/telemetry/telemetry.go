package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Service struct {
	engine    *Engine
	trips     TripRepository
	orders    OrderRepository
	carriers  CarrierRepository
	notifier  Notifier
	limiter   RateLimiter
	txManager TxManager
	now       func() time.Time
}

func New(
	engine *Engine,
	trips TripRepository,
	orders OrderRepository,
	carriers CarrierRepository,
	notifier Notifier,
	limiter RateLimiter,
	txManager TxManager,
) *Service {
	return &Service{
		engine:    engine,
		trips:     trips,
		orders:    orders,
		carriers:  carriers,
		notifier:  notifier,
		limiter:   limiter,
		txManager: txManager,
		now:       time.Now,
	}
}

// Ingest применяет отметку позиции к рейсу в одной транзакции: рейс,
// позиция перевозчика, статус заказа и уведомления.
func (s *Service) Ingest(ctx context.Context, sample entities.PositionSample) (*entities.TelemetryUpdate, error) {
	if !sample.Position.Valid() {
		return nil, entities.NewValidationError("position", "coordinates out of range")
	}
	if sample.Timestamp.IsZero() {
		return nil, entities.NewValidationError("timestamp", "required")
	}
	if err := s.engine.CheckClock(sample.Timestamp, s.now()); err != nil {
		TelemetrySamplesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if s.limiter != nil && !s.limiter.Allow(sample.TripID) {
		TelemetrySamplesTotal.WithLabelValues("rate_limited").Inc()
		return nil, ErrRateLimited
	}

	var update entities.TelemetryUpdate
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.trips.GetByIDForUpdate(ctx, sample.TripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.Status != entities.TripInProgress {
			return entities.NewStateConflictError("trip", trip.ID, trip.Status.String(), "tracking")
		}

		firstSample := trip.LastSampleAt == nil
		result := s.engine.Apply(trip, sample)

		update = entities.TelemetryUpdate{Trip: trip, Outcome: result.Outcome}
		if result.Outcome != entities.SampleApplied {
			return nil
		}

		updated, err := s.trips.Update(ctx, *trip, entities.TripInProgress)
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}
		update.Trip = updated
		update.Crossings = result.Crossings

		if err := s.carriers.UpdatePosition(ctx, trip.CarrierID, sample.Position, sample.Timestamp.UTC()); err != nil {
			return fmt.Errorf("update carrier position: %w", err)
		}

		if firstSample {
			if err := s.startTrip(ctx, trip.OrderID); err != nil {
				return err
			}
		}

		if err := s.notifier.EmitCrossings(ctx, updated, result.Crossings); err != nil {
			return fmt.Errorf("emit crossings: %w", err)
		}
		return nil
	})
	if err != nil {
		TelemetrySamplesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	TelemetrySamplesTotal.WithLabelValues(string(update.Outcome)).Inc()
	return &update, nil
}

func (s *Service) GetTelemetry(ctx context.Context, tripID int64) (*entities.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

// SweepStalls пересчитывает простой рейсов в пути на момент now.
// Ошибки по отдельным рейсам не прерывают обход.
func (s *Service) SweepStalls(ctx context.Context, now time.Time) (int, error) {
	inProgress := entities.TripInProgress
	trips, err := s.trips.List(ctx, entities.TripFilter{Status: &inProgress})
	if err != nil {
		return 0, fmt.Errorf("list trips in progress: %w", err)
	}
	TelemetryStallSweepTrips.Set(float64(len(trips)))

	var (
		emitted int
		errs    []error
	)
	for i := range trips {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		n, err := s.sweepTrip(ctx, trips[i].ID, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("trip %d: %w", trips[i].ID, err))
			continue
		}
		emitted += n
	}

	return emitted, errors.Join(errs...)
}

func (s *Service) sweepTrip(ctx context.Context, tripID int64, now time.Time) (int, error) {
	var emitted int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.trips.GetByIDForUpdate(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.Status != entities.TripInProgress {
			return nil
		}

		crossings := s.engine.Tick(trip, now)
		if !trip.Stalled && len(crossings) == 0 {
			return nil
		}

		updated, err := s.trips.Update(ctx, *trip, entities.TripInProgress)
		if err != nil {
			// рейс успели завершить между List и блокировкой
			if errors.Is(err, entities.ErrStateConflict) {
				return nil
			}
			return fmt.Errorf("update trip: %w", err)
		}

		if err := s.notifier.EmitCrossings(ctx, updated, crossings); err != nil {
			return fmt.Errorf("emit crossings: %w", err)
		}
		emitted = len(crossings)
		return nil
	})
	return emitted, err
}

func (s *Service) startTrip(ctx context.Context, orderID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if order.Status != entities.OrderAccepted {
		return nil
	}

	_, err = s.orders.UpdateStatus(ctx, orderID, entities.OrderAccepted, entities.OrderInProgress, entities.OrderPatch{})
	if err != nil {
		return fmt.Errorf("start trip: %w", err)
	}
	return nil
}
