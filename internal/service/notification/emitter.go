package notification

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Emitter struct {
	repository Repository
}

func New(repository Repository) *Emitter {
	return &Emitter{
		repository: repository,
	}
}

// EmitCrossings пишет уведомления грузоотправителю по пересечениям порогов рейса.
func (e *Emitter) EmitCrossings(ctx context.Context, trip *entities.Trip, crossings []entities.Crossing) error {
	for _, c := range crossings {
		n := entities.Notification{
			RecipientID:   trip.ShipperID,
			RecipientRole: entities.RoleShipper,
			TripID:        trip.ID,
			OrderID:       trip.OrderID,
			Kind:          c.Kind,
			Episode:       c.Episode,
			Message:       message(c.Kind, &entities.Order{ID: trip.OrderID}, trip),
			Urgent:        c.Urgent,
		}
		if _, err := e.emit(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) OfferAccepted(ctx context.Context, order *entities.Order, trip *entities.Trip) error {
	_, err := e.emit(ctx, e.lifecycle(entities.EventOfferAccepted, entities.RoleShipper, order.ShipperID, order, trip))
	return err
}

func (e *Emitter) Delivered(ctx context.Context, order *entities.Order, trip *entities.Trip) error {
	_, err := e.emit(ctx, e.lifecycle(entities.EventDelivered, entities.RoleShipper, order.ShipperID, order, trip))
	return err
}

func (e *Emitter) Finalized(ctx context.Context, order *entities.Order, trip *entities.Trip) error {
	_, err := e.emit(ctx, e.lifecycle(entities.EventFinalized, entities.RoleCarrier, trip.CarrierID, order, trip))
	return err
}

// List уведомления актора, новые сверху.
func (e *Emitter) List(ctx context.Context, actor entities.Actor, unreadOnly bool) ([]entities.Notification, error) {
	notifications, err := e.repository.ListByRecipient(ctx, actor.Role, actor.ID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. На дедупликацию не влияет.
func (e *Emitter) MarkRead(ctx context.Context, actor entities.Actor, id int64) (*entities.Notification, error) {
	n, err := e.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	if !actor.Is(n.RecipientRole, n.RecipientID) {
		return nil, entities.NewForbiddenError(actor, "read notification")
	}
	if n.Read {
		return n, nil
	}

	n, err = e.repository.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

func (e *Emitter) lifecycle(kind entities.EventKind, role entities.Role, recipientID int64, order *entities.Order, trip *entities.Trip) entities.Notification {
	return entities.Notification{
		RecipientID:   recipientID,
		RecipientRole: role,
		TripID:        trip.ID,
		OrderID:       order.ID,
		Kind:          kind,
		Message:       message(kind, order, trip),
	}
}

func (e *Emitter) emit(ctx context.Context, n entities.Notification) (bool, error) {
	n.CreatedAt = time.Now().UTC()

	_, created, err := e.repository.Insert(ctx, n)
	if err != nil {
		NotificationsTotal.WithLabelValues(n.Kind.String(), "error").Inc()
		return false, fmt.Errorf("emit %s notification for trip %d: %w", n.Kind, n.TripID, err)
	}

	result := "created"
	if !created {
		result = "duplicate"
	}
	NotificationsTotal.WithLabelValues(n.Kind.String(), result).Inc()
	return created, nil
}
