package kafka

import "time"

// PositionReported сообщение топика отметок позиции, ключ сообщения id рейса.
type PositionReported struct {
	TripID    int64     `json:"trip_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}
