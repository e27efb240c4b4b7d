package stats

import (
	"context"
	"fmt"

	"dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository агрегирующие запросы для сводки движка, только чтение.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error) {
	query, args, err := qb.
		Select("status", "COUNT(*)").
		From("orders").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository count orders error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository count orders error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatus]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("unexpected stats repository count orders error: %w", err)
		}
		counts[entities.OrderStatus(status)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository count orders error: %w", err)
	}
	return counts, nil
}

func (r *Repository) FinalizedRevenue(ctx context.Context) (float64, error) {
	query, args, err := qb.
		Select("COALESCE(SUM(price), 0)").
		From("orders").
		Where(sq.Eq{"status": entities.OrderFinalized.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected stats repository revenue error: %w", err)
	}

	var revenue float64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("unexpected stats repository revenue error: %w", err)
	}
	return revenue, nil
}

func (r *Repository) CarrierTotals(ctx context.Context) (*entities.CarrierTotals, error) {
	query, args, err := qb.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(completed_trips), 0)::BIGINT",
			"COALESCE(SUM(cumulative_co2_kg), 0)",
			"COALESCE(AVG(rating) FILTER (WHERE rating_count > 0), 0)",
		).
		From("carriers").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository carrier totals error: %w", err)
	}

	var totals entities.CarrierTotals
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&totals.Carriers,
		&totals.CompletedTrips,
		&totals.CO2Kg,
		&totals.AverageRating,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository carrier totals error: %w", err)
	}
	return &totals, nil
}
