package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

type Service struct {
	orders        OrderRepository
	trips         TripRepository
	carriers      CarrierRepository
	guard         EngagementGuard
	routing       RoutingGateway
	emission      EmissionFactory
	statusFactory HandlerFactory
	txManager     TxManager
}

func New(
	orders OrderRepository,
	trips TripRepository,
	carriers CarrierRepository,
	guard EngagementGuard,
	routing RoutingGateway,
	emission EmissionFactory,
	statusFactory HandlerFactory,
	txManager TxManager,
) *Service {
	return &Service{
		orders:        orders,
		trips:         trips,
		carriers:      carriers,
		guard:         guard,
		routing:       routing,
		emission:      emission,
		statusFactory: statusFactory,
		txManager:     txManager,
	}
}

// Publish создает груз в статусе published. Дистанция считается один раз
// и дальше служит знаменателем прогресса.
func (s *Service) Publish(ctx context.Context, actor entities.Actor, m entities.OrderModify) (*entities.Order, error) {
	if actor.Role != entities.RoleShipper {
		return nil, entities.NewForbiddenError(actor, "publish load")
	}
	if err := validatePublish(m); err != nil {
		return nil, err
	}

	fuel := entities.DefaultFuelType
	if m.TargetCarrierID != nil {
		target, err := s.carriers.GetByID(ctx, *m.TargetCarrierID)
		if err != nil {
			return nil, fmt.Errorf("get target carrier: %w", err)
		}
		fuel = target.Truck.Fuel
	}

	route := s.routing.Route(ctx, m.Origin.Point, m.Destination.Point)

	order := entities.Order{
		ShipperID:       actor.ID,
		TargetCarrierID: m.TargetCarrierID,
		Cargo: entities.Cargo{
			Description:           strings.TrimSpace(*m.Description),
			WeightKg:              *m.WeightKg,
			VolumeM3:              m.VolumeM3,
			RequiresRefrigeration: m.RequiresRefrigeration != nil && *m.RequiresRefrigeration,
			RequiresHazmat:        m.RequiresHazmat != nil && *m.RequiresHazmat,
		},
		Origin:        *m.Origin,
		Destination:   *m.Destination,
		Price:         *m.Price,
		PickupFrom:    m.PickupFrom,
		PickupTo:      m.PickupTo,
		DistanceKm:    route.DistanceKm,
		CO2EstimateKg: s.emission.EstimateKg(route.DistanceKm, fuel),
		Status:        entities.OrderPublished,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

// AcceptOffer принимает предложение перевозчиком-актором и открывает рейс.
// Слот перевозчика резервируется в той же транзакции.
func (s *Service) AcceptOffer(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Acceptance, error) {
	if actor.Role != entities.RoleCarrier {
		return nil, entities.NewForbiddenError(actor, "accept offer")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.Status.CanTransitionTo(entities.OrderAccepted) {
		return nil, entities.NewStateConflictError("order", orderID, order.Status.String(), entities.OrderAccepted.String())
	}

	// маршрут запрашиваем до транзакции, внешний вызов не держит блокировки
	route := s.routing.Route(ctx, order.Origin.Point, order.Destination.Point)

	var acceptance entities.Acceptance
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.Status.CanTransitionTo(entities.OrderAccepted) {
			return entities.NewStateConflictError("order", orderID, order.Status.String(), entities.OrderAccepted.String())
		}
		if order.TargetCarrierID != nil && *order.TargetCarrierID != actor.ID {
			return entities.NewForbiddenError(actor, "accept offer addressed to another carrier")
		}

		carrier, err := s.carriers.GetByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("get carrier: %w", err)
		}
		if reasons := carrier.Truck.Incompatibilities(order.Cargo); len(reasons) > 0 {
			return entities.NewValidationError("truck", strings.Join(reasons, "; "))
		}

		if err := s.guard.Reserve(ctx, carrier.ID); err != nil {
			return err
		}

		co2 := s.emission.EstimateKg(order.DistanceKm, carrier.Truck.Fuel)
		accepted, err := s.orders.UpdateStatus(ctx, orderID, entities.OrderPublished, entities.OrderAccepted,
			entities.OrderPatch{CarrierID: &carrier.ID, CO2EstimateKg: &co2})
		if err != nil {
			return fmt.Errorf("accept order: %w", err)
		}

		trip, err := s.trips.Create(ctx, newTrip(accepted, route))
		if err != nil {
			return fmt.Errorf("open trip: %w", err)
		}

		if err := s.afterTransition(ctx, accepted, trip); err != nil {
			return err
		}

		acceptance = entities.Acceptance{Order: *accepted, Trip: *trip}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrderTransitionsTotal.WithLabelValues(entities.OrderAccepted.String()).Inc()
	return &acceptance, nil
}

// RejectOffer отзыв груза грузоотправителем или отказ адресата предложения.
func (s *Service) RejectOffer(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error) {
	var rejected *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		owner := actor.Is(entities.RoleShipper, order.ShipperID)
		addressee := order.TargetCarrierID != nil && actor.Is(entities.RoleCarrier, *order.TargetCarrierID)
		if !owner && !addressee {
			return entities.NewForbiddenError(actor, "reject offer")
		}

		if !order.Status.CanTransitionTo(entities.OrderRejected) {
			return entities.NewStateConflictError("order", orderID, order.Status.String(), entities.OrderRejected.String())
		}

		rejected, err = s.orders.UpdateStatus(ctx, orderID, entities.OrderPublished, entities.OrderRejected, entities.OrderPatch{})
		if err != nil {
			return fmt.Errorf("reject order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrderTransitionsTotal.WithLabelValues(entities.OrderRejected.String()).Inc()
	return rejected, nil
}

// MarkDelivered перевозчик отмечает доставку. Слот не освобождается до подтверждения.
func (s *Service) MarkDelivered(ctx context.Context, actor entities.Actor, tripID int64) (*entities.Trip, error) {
	if actor.Role != entities.RoleCarrier {
		return nil, entities.NewForbiddenError(actor, "mark delivered")
	}

	var delivered *entities.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.trips.GetByIDForUpdate(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.CarrierID != actor.ID {
			return entities.NewForbiddenError(actor, "mark delivered")
		}
		if !trip.Status.CanTransitionTo(entities.TripDelivered) {
			return entities.NewStateConflictError("trip", tripID, trip.Status.String(), entities.TripDelivered.String())
		}

		now := time.Now().UTC()
		onTime := !now.After(trip.ExpectedArrivalAt)
		trip.Status = entities.TripDelivered
		trip.DeliveredAt = &now
		trip.OnTime = &onTime

		delivered, err = s.trips.Update(ctx, *trip, entities.TripInProgress)
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}

		order, err := s.orders.GetByID(ctx, trip.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		// без единой отметки заказ еще в accepted, проходим in_progress по таблице
		if order.Status == entities.OrderAccepted {
			order, err = s.transition(ctx, order, entities.OrderInProgress, entities.OrderPatch{})
			if err != nil {
				return err
			}
		}

		order, err = s.transition(ctx, order, entities.OrderDelivered, entities.OrderPatch{})
		if err != nil {
			return err
		}

		return s.afterTransition(ctx, order, delivered)
	})
	if err != nil {
		return nil, err
	}

	OrderTransitionsTotal.WithLabelValues(entities.OrderDelivered.String()).Inc()
	return delivered, nil
}

// ConfirmDelivery грузоотправитель закрывает рейс: освобождается слот,
// перевозчику засчитываются рейс и CO2.
func (s *Service) ConfirmDelivery(ctx context.Context, actor entities.Actor, tripID int64) (*entities.Trip, error) {
	if actor.Role != entities.RoleShipper && actor.Role != entities.RoleAdmin {
		return nil, entities.NewForbiddenError(actor, "confirm delivery")
	}

	var finalized *entities.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.trips.GetByIDForUpdate(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if actor.Role == entities.RoleShipper && trip.ShipperID != actor.ID {
			return entities.NewForbiddenError(actor, "confirm delivery")
		}
		if !trip.Status.CanTransitionTo(entities.TripFinalized) {
			return entities.NewStateConflictError("trip", tripID, trip.Status.String(), entities.TripFinalized.String())
		}

		now := time.Now().UTC()
		trip.Status = entities.TripFinalized
		trip.FinalizedAt = &now

		finalized, err = s.trips.Update(ctx, *trip, entities.TripDelivered)
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}

		order, err := s.orders.GetByID(ctx, trip.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		order, err = s.transition(ctx, order, entities.OrderFinalized, entities.OrderPatch{FinalizedAt: &now})
		if err != nil {
			return err
		}

		return s.afterTransition(ctx, order, finalized)
	})
	if err != nil {
		return nil, err
	}

	OrderTransitionsTotal.WithLabelValues(entities.OrderFinalized.String()).Inc()
	return finalized, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, entities.NewValidationError("status", "unknown order status")
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) GetTrip(ctx context.Context, id int64) (*entities.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (s *Service) ListTrips(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error) {
	trips, err := s.trips.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// transition один шаг по таблице переходов с CAS на текущий статус
func (s *Service) transition(
	ctx context.Context,
	order *entities.Order,
	to entities.OrderStatus,
	patch entities.OrderPatch,
) (*entities.Order, error) {
	if !order.Status.CanTransitionTo(to) {
		return nil, entities.NewStateConflictError("order", order.ID, order.Status.String(), to.String())
	}

	updated, err := s.orders.UpdateStatus(ctx, order.ID, order.Status, to, patch)
	if err != nil {
		return nil, fmt.Errorf("move order to %s: %w", to, err)
	}
	return updated, nil
}

func (s *Service) afterTransition(ctx context.Context, order *entities.Order, trip *entities.Trip) error {
	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// у статуса нет побочных действий
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	return executeFn(ctx, order, trip)
}

func newTrip(order *entities.Order, route entities.Route) entities.Trip {
	now := time.Now().UTC()
	estimated := route.DurationMinutes

	return entities.Trip{
		OrderID:           order.ID,
		CarrierID:         *order.CarrierID,
		ShipperID:         order.ShipperID,
		Origin:            order.Origin,
		Destination:       order.Destination,
		Route:             route.Points,
		DistanceTotalKm:   order.DistanceKm,
		EstimatedMinutes:  estimated,
		StartedAt:         now,
		ExpectedArrivalAt: now.Add(time.Duration(estimated * float64(time.Minute))),
		Status:            entities.TripInProgress,
		UpdatedAt:         now,
	}
}
