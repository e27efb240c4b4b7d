package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "order_id", "carrier_id", "shipper_id",
	"origin_lat", "origin_lng", "origin_label",
	"destination_lat", "destination_lng", "destination_label",
	"route", "distance_total_km", "distance_traveled_km", "current_lat", "current_lng",
	"elapsed_minutes", "estimated_minutes",
	"stalled", "stalled_urgent", "stalled_minutes", "total_stalled_minutes", "stall_episode",
	"last_sample_at", "last_movement_at", "last_movement_lat", "last_movement_lng",
	"started_at", "expected_arrival_at", "delivered_at", "on_time", "finalized_at",
	"status", "updated_at",
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

func scan(row pgx.Row) (*TripDB, error) {
	var t TripDB
	err := row.Scan(
		&t.ID,
		&t.OrderID,
		&t.CarrierID,
		&t.ShipperID,
		&t.OriginLat,
		&t.OriginLng,
		&t.OriginLabel,
		&t.DestinationLat,
		&t.DestinationLng,
		&t.DestinationLabel,
		&t.Route,
		&t.DistanceTotalKm,
		&t.DistanceTraveledKm,
		&t.CurrentLat,
		&t.CurrentLng,
		&t.ElapsedMinutes,
		&t.EstimatedMinutes,
		&t.Stalled,
		&t.StalledUrgent,
		&t.StalledMinutes,
		&t.TotalStalledMinutes,
		&t.StallEpisode,
		&t.LastSampleAt,
		&t.LastMovementAt,
		&t.LastMovementLat,
		&t.LastMovementLng,
		&t.StartedAt,
		&t.ExpectedArrivalAt,
		&t.DeliveredAt,
		&t.OnTime,
		&t.FinalizedAt,
		&t.Status,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create открывает рейс; у заказа может быть только один рейс.
func (r *Repository) Create(ctx context.Context, t entities.Trip) (*entities.Trip, error) {
	tripDB := FromDomain(&t)

	query, args, err := qb.
		Insert("trips").
		SetMap(map[string]interface{}{
			"order_id":            tripDB.OrderID,
			"carrier_id":          tripDB.CarrierID,
			"shipper_id":          tripDB.ShipperID,
			"origin_lat":          tripDB.OriginLat,
			"origin_lng":          tripDB.OriginLng,
			"origin_label":        tripDB.OriginLabel,
			"destination_lat":     tripDB.DestinationLat,
			"destination_lng":     tripDB.DestinationLng,
			"destination_label":   tripDB.DestinationLabel,
			"route":               tripDB.Route,
			"distance_total_km":   tripDB.DistanceTotalKm,
			"estimated_minutes":   tripDB.EstimatedMinutes,
			"started_at":          tripDB.StartedAt,
			"expected_arrival_at": tripDB.ExpectedArrivalAt,
			"status":              tripDB.Status,
		}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	created, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.NewStateConflictError("order", t.OrderID, "has trip", "new trip")
		}
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "", entities.NewNotFoundError("trip", id))
}

// GetByIDForUpdate блокирует строку рейса до конца транзакции,
// отметки одного рейса обрабатываются строго по очереди.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Trip, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "FOR UPDATE", entities.NewNotFoundError("trip", id))
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.Trip, error) {
	return r.getOne(ctx, sq.Eq{"order_id": orderID}, "", entities.NewNotFoundError("trip for order", orderID))
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, suffix string, notFound error) (*entities.Trip, error) {
	builder := qb.
		Select(columns...).
		From("trips").
		Where(where)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository get error: %w", err)
	}

	tripDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("unexpected trip repository get error: %w", err)
	}

	return ToDomain(tripDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error) {
	builder := qb.
		Select(columns...).
		From("trips").
		OrderBy("id")

	if filter.CarrierID != nil {
		builder = builder.Where(sq.Eq{"carrier_id": *filter.CarrierID})
	}
	if filter.ShipperID != nil {
		builder = builder.Where(sq.Eq{"shipper_id": *filter.ShipperID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository list error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		tripDB, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository list error: %w", err)
		}
		tripModels = append(tripModels, *tripDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected trip repository list error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

// Update перезаписывает изменяемые поля рейса, если статус в базе равен expected.
// Маршрут, дистанция и плановые времена не меняются после открытия рейса.
func (r *Repository) Update(ctx context.Context, t entities.Trip, expected entities.TripStatus) (*entities.Trip, error) {
	tripDB := FromDomain(&t)

	query, args, err := qb.
		Update("trips").
		SetMap(map[string]interface{}{
			"distance_traveled_km":  tripDB.DistanceTraveledKm,
			"current_lat":           tripDB.CurrentLat,
			"current_lng":           tripDB.CurrentLng,
			"elapsed_minutes":       tripDB.ElapsedMinutes,
			"stalled":               tripDB.Stalled,
			"stalled_urgent":        tripDB.StalledUrgent,
			"stalled_minutes":       tripDB.StalledMinutes,
			"total_stalled_minutes": tripDB.TotalStalledMinutes,
			"stall_episode":         tripDB.StallEpisode,
			"last_sample_at":        tripDB.LastSampleAt,
			"last_movement_at":      tripDB.LastMovementAt,
			"last_movement_lat":     tripDB.LastMovementLat,
			"last_movement_lng":     tripDB.LastMovementLng,
			"delivered_at":          tripDB.DeliveredAt,
			"on_time":               tripDB.OnTime,
			"finalized_at":          tripDB.FinalizedAt,
			"status":                tripDB.Status,
			"updated_at":            sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": t.ID, "status": expected.String()}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	updated, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err == nil {
		return ToDomain(updated), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	current, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return nil, entities.NewStateConflictError("trip", t.ID, current.Status.String(), t.Status.String())
}
