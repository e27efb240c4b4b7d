package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "shipper_id", "carrier_id", "target_carrier_id",
	"description", "weight_kg", "volume_m3", "requires_refrigeration", "requires_hazmat",
	"origin_lat", "origin_lng", "origin_label",
	"destination_lat", "destination_lng", "destination_label",
	"price", "pickup_from", "pickup_to", "distance_km", "co2_estimate_kg",
	"status", "created_at", "updated_at", "finalized_at",
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

func scan(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.ShipperID,
		&o.CarrierID,
		&o.TargetCarrierID,
		&o.Description,
		&o.WeightKg,
		&o.VolumeM3,
		&o.RequiresRefrigeration,
		&o.RequiresHazmat,
		&o.OriginLat,
		&o.OriginLng,
		&o.OriginLabel,
		&o.DestinationLat,
		&o.DestinationLng,
		&o.DestinationLabel,
		&o.Price,
		&o.PickupFrom,
		&o.PickupTo,
		&o.DistanceKm,
		&o.CO2EstimateKg,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.FinalizedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	orderDB := FromDomain(&o)

	query, args, err := qb.
		Insert("orders").
		SetMap(map[string]interface{}{
			"shipper_id":             orderDB.ShipperID,
			"carrier_id":             orderDB.CarrierID,
			"target_carrier_id":      orderDB.TargetCarrierID,
			"description":            orderDB.Description,
			"weight_kg":              orderDB.WeightKg,
			"volume_m3":              orderDB.VolumeM3,
			"requires_refrigeration": orderDB.RequiresRefrigeration,
			"requires_hazmat":        orderDB.RequiresHazmat,
			"origin_lat":             orderDB.OriginLat,
			"origin_lng":             orderDB.OriginLng,
			"origin_label":           orderDB.OriginLabel,
			"destination_lat":        orderDB.DestinationLat,
			"destination_lng":        orderDB.DestinationLng,
			"destination_label":      orderDB.DestinationLabel,
			"price":                  orderDB.Price,
			"pickup_from":            orderDB.PickupFrom,
			"pickup_to":              orderDB.PickupTo,
			"distance_km":            orderDB.DistanceKm,
			"co2_estimate_kg":        orderDB.CO2EstimateKg,
			"status":                 orderDB.Status,
		}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	created, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.NewNotFoundError("target carrier", pointer.GetInt64(o.TargetCarrierID))
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := qb.
		Select(columns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError("order", id)
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(columns...).
		From("orders").
		OrderBy("id")

	if filter.ShipperID != nil {
		builder = builder.Where(sq.Eq{"shipper_id": *filter.ShipperID})
	}
	if filter.CarrierID != nil {
		builder = builder.Where(sq.Eq{"carrier_id": *filter.CarrierID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderDB, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatus compare-and-set по статусу: ноль строк значит либо заказа нет,
// либо его уже перевели другим запросом.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to entities.OrderStatus,
	patch entities.OrderPatch,
) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if patch.CarrierID != nil {
		builder = builder.Set("carrier_id", *patch.CarrierID)
	}
	if patch.CO2EstimateKg != nil {
		builder = builder.Set("co2_estimate_kg", *patch.CO2EstimateKg)
	}
	if patch.FinalizedAt != nil {
		builder = builder.Set("finalized_at", *patch.FinalizedAt)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "status": from.String()}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	orderDB, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err == nil {
		return ToDomain(orderDB), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, entities.NewStateConflictError("order", id, current.Status.String(), to.String())
}

func (r *Repository) UpdateCO2Estimate(ctx context.Context, id int64, co2Kg float64) error {
	query, args, err := qb.
		Update("orders").
		Set("co2_estimate_kg", co2Kg).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update co2 error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update co2 error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.NewNotFoundError("order", id)
	}
	return nil
}
