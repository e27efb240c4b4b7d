package notification

import (
	"dispatch/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: entities.Role(n.RecipientRole),
		TripID:        n.TripID,
		OrderID:       n.OrderID,
		Kind:          entities.EventKind(n.Kind),
		Episode:       n.Episode,
		Message:       n.Message,
		Urgent:        n.Urgent,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i := range notificationsDB {
		result[i] = *ToDomain(&notificationsDB[i])
	}
	return result
}
