package memory

import (
	"context"
	"sort"

	"dispatch/internal/entities"
)

type NotificationRepository struct {
	store *Store
}

func (r *NotificationRepository) Insert(ctx context.Context, n entities.Notification) (*entities.Notification, bool, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	key := notificationKey{tripID: n.TripID, kind: n.Kind, episode: n.Episode}
	if id, ok := r.store.data.notificationKeys[key]; ok {
		existing := r.store.data.notifications[id]
		return &existing, false, nil
	}

	n.ID = r.store.data.nextID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now()
	}
	r.store.data.notifications[n.ID] = n
	r.store.data.notificationKeys[key] = n.ID

	out := n
	return &out, true, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*entities.Notification, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	n, ok := r.store.data.notifications[id]
	if !ok {
		return nil, entities.NewNotFoundError("notification", id)
	}
	return &n, nil
}

func (r *NotificationRepository) ListByRecipient(
	ctx context.Context,
	role entities.Role,
	recipientID int64,
	unreadOnly bool,
) ([]entities.Notification, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := make([]entities.Notification, 0)
	for _, n := range r.store.data.notifications {
		if n.RecipientRole != role || n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (*entities.Notification, error) {
	unlock, err := r.store.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	n, ok := r.store.data.notifications[id]
	if !ok {
		return nil, entities.NewNotFoundError("notification", id)
	}
	n.Read = true
	r.store.data.notifications[id] = n
	return &n, nil
}
