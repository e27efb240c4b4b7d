package rating

import "time"

type RatingDB struct {
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
