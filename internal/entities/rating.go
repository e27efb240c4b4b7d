package entities

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

type Rating struct {
	ID            int64
	OrderID       int64
	CarrierID     int64
	ShipperID     int64
	Score         int
	Punctuality   *int
	CargoCare     *int
	Communication *int
	Comment       string
	CreatedAt     time.Time
}

type RatingModify struct {
	Score         *int
	Punctuality   *int
	CargoCare     *int
	Communication *int
	Comment       *string
}
