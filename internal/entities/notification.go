package entities

import "time"

type EventKind string

const (
	EventOfferAccepted EventKind = "offer_accepted"
	EventHalfway       EventKind = "halfway"
	EventNearArrival   EventKind = "near_arrival"
	EventStalled       EventKind = "stalled"
	EventStalledUrgent EventKind = "stalled_urgent"
	EventDelivered     EventKind = "delivered"
	EventFinalized     EventKind = "finalized"
)

func (k EventKind) String() string {
	return string(k)
}

// Crossing пересечение порога, обнаруженное за одно обновление телеметрии.
// Episode отличен от нуля только для остановок.
type Crossing struct {
	Kind    EventKind
	Episode int
	Urgent  bool
}

type Notification struct {
	ID            int64
	RecipientID   int64
	RecipientRole Role
	TripID        int64
	OrderID       int64
	Kind          EventKind
	Episode       int
	Message       string
	Urgent        bool
	Read          bool
	CreatedAt     time.Time
}
