package notification

import "time"

type NotificationDB struct {
	ID            int64
	RecipientID   int64
	RecipientRole string
	TripID        int64
	OrderID       int64
	Kind          string
	Episode       int
	Message       string
	Urgent        bool
	Read          bool
	CreatedAt     time.Time
}
