package carrier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/carrier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "name", "lat", "lng", "position_updated_at", "available",
	"truck_plate", "truck_capacity_kg", "truck_volume_m3", "fuel_type", "refrigerated", "hazmat",
	"rating", "rating_count", "completed_trips", "cumulative_co2_kg", "active_engagements",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scan(row pgx.Row) (*CarrierDB, error) {
	var c CarrierDB
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Lat,
		&c.Lng,
		&c.PositionUpdatedAt,
		&c.Available,
		&c.TruckPlate,
		&c.TruckCapacityKg,
		&c.TruckVolumeM3,
		&c.FuelType,
		&c.Refrigerated,
		&c.Hazmat,
		&c.Rating,
		&c.RatingCount,
		&c.CompletedTrips,
		&c.CumulativeCO2Kg,
		&c.ActiveEngagements,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c entities.Carrier) (*entities.Carrier, error) {
	query, args, err := qb.
		Insert("carriers").
		Columns("name", "available", "truck_plate", "truck_capacity_kg", "truck_volume_m3", "fuel_type", "refrigerated", "hazmat").
		Values(c.Name, c.Available, c.Truck.Plate, c.Truck.CapacityKg, c.Truck.VolumeM3, c.Truck.Fuel.String(), c.Truck.Refrigerated, c.Truck.Hazmat).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected carrier repository create error: %w", err)
	}

	carrierDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, carrier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected carrier repository create error: %w", err)
	}

	return ToDomain(carrierDB), nil
}

func (r *Repository) Update(ctx context.Context, m entities.CarrierModify) (*entities.Carrier, error) {
	modifyDB := FromDomainModify(&m)
	if modifyDB.ID == nil {
		return nil, entities.NewValidationError("id", "required")
	}

	builder := qb.
		Update("carriers")

	// опциональные поля
	if modifyDB.Name != nil {
		builder = builder.Set("name", modifyDB.Name)
	}
	if modifyDB.Available != nil {
		builder = builder.Set("available", modifyDB.Available)
	}
	if modifyDB.TruckPlate != nil {
		builder = builder.
			Set("truck_plate", modifyDB.TruckPlate).
			Set("truck_capacity_kg", modifyDB.TruckCapacityKg).
			Set("truck_volume_m3", modifyDB.TruckVolumeM3).
			Set("fuel_type", modifyDB.FuelType).
			Set("refrigerated", modifyDB.Refrigerated).
			Set("hazmat", modifyDB.Hazmat)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected carrier repository update error: %w", err)
	}

	carrierDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError("carrier", *modifyDB.ID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, carrier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected carrier repository update error: %w", err)
	}

	return ToDomain(carrierDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Carrier, error) {
	query, args, err := qb.
		Select(columns...).
		From("carriers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected carrier repository getbyid error: %w", err)
	}

	carrierDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError("carrier", id)
		}
		return nil, fmt.Errorf("unexpected carrier repository getbyid error: %w", err)
	}

	return ToDomain(carrierDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Carrier, error) {
	query, args, err := qb.
		Select(columns...).
		From("carriers").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected carrier repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected carrier repository getall error: %w", err)
	}
	defer rows.Close()

	carrierModels := make([]CarrierDB, 0, 8)
	for rows.Next() {
		carrierDB, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected carrier repository getall error: %w", err)
		}
		carrierModels = append(carrierModels, *carrierDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected carrier repository getall error: %w", err)
	}

	return ToDomainList(carrierModels), nil
}

// UpdatePosition не перезаписывает более свежую позицию.
func (r *Repository) UpdatePosition(ctx context.Context, id int64, p entities.Point, at time.Time) error {
	query := `
		UPDATE carriers
		SET lat = $2, lng = $3, position_updated_at = $4, updated_at = NOW()
		WHERE id = $1
		  AND (position_updated_at IS NULL OR position_updated_at <= $4)
	`

	result, err := r.querier.Exec(ctx, query, id, p.Lat, p.Lng, at)
	if err != nil {
		return fmt.Errorf("unexpected carrier repository update position error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	return r.ensureExists(ctx, id)
}

// IncrementEngagements условный UPDATE: строка блокируется до конца транзакции,
// false при достигнутом лимите или отсутствии перевозчика.
func (r *Repository) IncrementEngagements(ctx context.Context, carrierID int64, limit int) (bool, error) {
	query := `
		UPDATE carriers
		SET active_engagements = active_engagements + 1, updated_at = NOW()
		WHERE id = $1 AND active_engagements < $2
	`

	result, err := r.querier.Exec(ctx, query, carrierID, limit)
	if err != nil {
		return false, fmt.Errorf("unexpected carrier repository increment engagements error: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *Repository) DecrementEngagements(ctx context.Context, carrierID int64) error {
	query := `
		UPDATE carriers
		SET active_engagements = GREATEST(active_engagements - 1, 0), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, carrierID)
	if err != nil {
		return fmt.Errorf("unexpected carrier repository decrement engagements error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	return nil
}

func (r *Repository) RecordCompletedTrip(ctx context.Context, carrierID int64, co2Kg float64) error {
	query := `
		UPDATE carriers
		SET completed_trips = completed_trips + 1,
		    cumulative_co2_kg = cumulative_co2_kg + $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, carrierID, co2Kg)
	if err != nil {
		return fmt.Errorf("unexpected carrier repository record trip error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	return nil
}

// ApplyRating пересчитывает средний рейтинг одним выражением.
func (r *Repository) ApplyRating(ctx context.Context, carrierID int64, score int) error {
	query := `
		UPDATE carriers
		SET rating = (rating * rating_count + $2) / (rating_count + 1),
		    rating_count = rating_count + 1,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, carrierID, float64(score))
	if err != nil {
		return fmt.Errorf("unexpected carrier repository apply rating error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.NewNotFoundError("carrier", carrierID)
	}
	return nil
}

func (r *Repository) ensureExists(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM carriers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected carrier repository exists error: %w", err)
	}
	if !exists {
		return entities.NewNotFoundError("carrier", id)
	}
	return nil
}
