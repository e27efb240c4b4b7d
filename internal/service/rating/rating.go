package rating

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"dispatch/internal/entities"
)

const maxCommentLength = 1000

type Service struct {
	ratings   Repository
	orders    OrderRepository
	carriers  CarrierRepository
	txManager TxManager
}

func New(ratings Repository, orders OrderRepository, carriers CarrierRepository, txManager TxManager) *Service {
	return &Service{
		ratings:   ratings,
		orders:    orders,
		carriers:  carriers,
		txManager: txManager,
	}
}

// Rate оценка перевозчика грузоотправителем после подтверждения доставки.
// Средний рейтинг пересчитывается в той же транзакции.
func (s *Service) Rate(ctx context.Context, actor entities.Actor, orderID int64, m entities.RatingModify) (*entities.Rating, error) {
	if actor.Role != entities.RoleShipper {
		return nil, entities.NewForbiddenError(actor, "rate carrier")
	}
	if err := validateRating(m); err != nil {
		return nil, err
	}

	var created *entities.Rating
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.ShipperID != actor.ID {
			return entities.NewForbiddenError(actor, "rate carrier")
		}
		if order.Status != entities.OrderFinalized || order.CarrierID == nil {
			return entities.NewStateConflictError("order", orderID, order.Status.String(), "rated")
		}

		r := entities.Rating{
			OrderID:       order.ID,
			CarrierID:     *order.CarrierID,
			ShipperID:     actor.ID,
			Score:         *m.Score,
			Punctuality:   m.Punctuality,
			CargoCare:     m.CargoCare,
			Communication: m.Communication,
		}
		if m.Comment != nil {
			r.Comment = strings.TrimSpace(*m.Comment)
		}

		created, err = s.ratings.Create(ctx, r)
		if err != nil {
			return fmt.Errorf("create rating: %w", err)
		}

		if err := s.carriers.ApplyRating(ctx, r.CarrierID, r.Score); err != nil {
			return fmt.Errorf("apply rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) ListForCarrier(ctx context.Context, carrierID int64) ([]entities.Rating, error) {
	if _, err := s.carriers.GetByID(ctx, carrierID); err != nil {
		return nil, fmt.Errorf("get carrier: %w", err)
	}

	ratings, err := s.ratings.ListByCarrier(ctx, carrierID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

func validateRating(m entities.RatingModify) error {
	if m.Score == nil {
		return entities.NewValidationError("score", "required")
	}

	scores := []struct {
		field string
		value *int
	}{
		{"score", m.Score},
		{"punctuality", m.Punctuality},
		{"cargo_care", m.CargoCare},
		{"communication", m.Communication},
	}
	for _, sc := range scores {
		if sc.value != nil && (*sc.value < entities.MinRatingScore || *sc.value > entities.MaxRatingScore) {
			return entities.NewValidationError(sc.field, "must be between 1 and 5")
		}
	}

	if m.Comment != nil && utf8.RuneCountInString(*m.Comment) > maxCommentLength {
		return entities.NewValidationError("comment", "too long")
	}
	return nil
}
