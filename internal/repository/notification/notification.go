package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "recipient_id", "recipient_role", "trip_id", "order_id",
	"kind", "episode", "message", "urgent", "read", "created_at",
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

func scan(row pgx.Row) (*NotificationDB, error) {
	var n NotificationDB
	err := row.Scan(
		&n.ID,
		&n.RecipientID,
		&n.RecipientRole,
		&n.TripID,
		&n.OrderID,
		&n.Kind,
		&n.Episode,
		&n.Message,
		&n.Urgent,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Insert создает уведомление ровно один раз на (trip_id, kind, episode).
// Повтор возвращает уже сохраненную запись и false.
func (r *Repository) Insert(ctx context.Context, n entities.Notification) (*entities.Notification, bool, error) {
	query, args, err := qb.
		Insert("notifications").
		Columns("recipient_id", "recipient_role", "trip_id", "order_id", "kind", "episode", "message", "urgent").
		Values(n.RecipientID, n.RecipientRole.String(), n.TripID, n.OrderID, n.Kind.String(), n.Episode, n.Message, n.Urgent).
		Suffix("ON CONFLICT (trip_id, kind, episode) DO NOTHING " + returning).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("unexpected notification repository insert error: %w", err)
	}

	created, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err == nil {
		return ToDomain(created), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("unexpected notification repository insert error: %w", err)
	}

	existing, err := r.getOne(ctx, sq.Eq{"trip_id": n.TripID, "kind": n.Kind.String(), "episode": n.Episode})
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Notification, error) {
	n, err := r.getOne(ctx, sq.Eq{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entities.NewNotFoundError("notification", id)
	}
	return n, err
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq) (*entities.Notification, error) {
	query, args, err := qb.
		Select(columns...).
		From("notifications").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository get error: %w", err)
	}

	n, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected notification repository get error: %w", err)
	}
	return ToDomain(n), nil
}

func (r *Repository) ListByRecipient(
	ctx context.Context,
	role entities.Role,
	recipientID int64,
	unreadOnly bool,
) ([]entities.Notification, error) {
	builder := qb.
		Select(columns...).
		From("notifications").
		Where(sq.Eq{"recipient_role": role.String(), "recipient_id": recipientID}).
		OrderBy("created_at DESC", "id DESC")
	if unreadOnly {
		builder = builder.Where(sq.Eq{"read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]NotificationDB, 0, 8)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		models = append(models, *n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) MarkRead(ctx context.Context, id int64) (*entities.Notification, error) {
	query, args, err := qb.
		Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	n, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError("notification", id)
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}
	return ToDomain(n), nil
}
