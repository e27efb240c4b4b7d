//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	// Insert вставляет уведомление, если ключа (trip_id, kind, episode) еще нет.
	// created=false означает, что такое уведомление уже было.
	Insert(ctx context.Context, n entities.Notification) (*entities.Notification, bool, error)
	GetByID(ctx context.Context, id int64) (*entities.Notification, error)
	ListByRecipient(ctx context.Context, role entities.Role, recipientID int64, unreadOnly bool) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id int64) (*entities.Notification, error)
}
