package order_transition

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

type CompletedTripRecorder interface {
	RecordCompletedTrip(ctx context.Context, carrierID int64, co2Kg float64) error
}

// TransitionHandlerFactory побочные действия после перехода заказа в статус.
type TransitionHandlerFactory struct {
	guard    order.EngagementGuard
	recorder CompletedTripRecorder
	notifier order.Notifier
}

func NewTransitionHandlerFactory(
	guard order.EngagementGuard,
	recorder CompletedTripRecorder,
	notifier order.Notifier,
) *TransitionHandlerFactory {
	return &TransitionHandlerFactory{
		guard:    guard,
		recorder: recorder,
		notifier: notifier,
	}
}

func (f *TransitionHandlerFactory) GetHandler(status entities.OrderStatus) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderAccepted:
		return f.acceptedHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderFinalized:
		return f.finalizedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *TransitionHandlerFactory) acceptedHandler(ctx context.Context, o *entities.Order, trip *entities.Trip) error {
	if err := f.notifier.OfferAccepted(ctx, o, trip); err != nil {
		return fmt.Errorf("notify accepted order %d: %w", o.ID, err)
	}
	return nil
}

func (f *TransitionHandlerFactory) deliveredHandler(ctx context.Context, o *entities.Order, trip *entities.Trip) error {
	if err := f.notifier.Delivered(ctx, o, trip); err != nil {
		return fmt.Errorf("notify delivered order %d: %w", o.ID, err)
	}
	return nil
}

func (f *TransitionHandlerFactory) finalizedHandler(ctx context.Context, o *entities.Order, trip *entities.Trip) error {
	if err := f.guard.Release(ctx, trip.CarrierID); err != nil {
		return fmt.Errorf("release carrier for finalized order %d: %w", o.ID, err)
	}
	if err := f.recorder.RecordCompletedTrip(ctx, trip.CarrierID, o.CO2EstimateKg); err != nil {
		return fmt.Errorf("record completed trip for order %d: %w", o.ID, err)
	}
	if err := f.notifier.Finalized(ctx, o, trip); err != nil {
		return fmt.Errorf("notify finalized order %d: %w", o.ID, err)
	}
	return nil
}
