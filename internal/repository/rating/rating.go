package rating

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/rating"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scan(row pgx.Row) (*RatingDB, error) {
	var r RatingDB
	err := row.Scan(
		&r.ID,
		&r.OrderID,
		&r.CarrierID,
		&r.ShipperID,
		&r.Score,
		&r.Punctuality,
		&r.CargoCare,
		&r.Communication,
		&r.Comment,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Repository) Create(ctx context.Context, rt entities.Rating) (*entities.Rating, error) {
	query := `
		INSERT INTO ratings (order_id, carrier_id, shipper_id, score, punctuality, cargo_care, communication, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_id, carrier_id, shipper_id, score, punctuality, cargo_care, communication, comment, created_at
	`

	created, err := scan(r.querier.QueryRow(
		ctx,
		query,
		rt.OrderID,
		rt.CarrierID,
		rt.ShipperID,
		rt.Score,
		rt.Punctuality,
		rt.CargoCare,
		rt.Communication,
		rt.Comment,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rating.ErrAlreadyRated
		}
		return nil, fmt.Errorf("unexpected rating repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) ListByCarrier(ctx context.Context, carrierID int64) ([]entities.Rating, error) {
	query := `
		SELECT id, order_id, carrier_id, shipper_id, score, punctuality, cargo_care, communication, comment, created_at
		FROM ratings
		WHERE carrier_id = $1
		ORDER BY id DESC
	`

	rows, err := r.querier.Query(ctx, query, carrierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]RatingDB, 0, 8)
	for rows.Next() {
		rt, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
		}
		models = append(models, *rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}

	return ToDomainList(models), nil
}
