package entities

// CarrierTotals агрегаты по всем перевозчикам.
type CarrierTotals struct {
	Carriers       int64
	CompletedTrips int64
	CO2Kg          float64
	AverageRating  float64 // только по перевозчикам с оценками
}

// EngineStats сводка по всему движку.
type EngineStats struct {
	Carriers       int64
	OrdersTotal    int64
	OrdersByStatus map[OrderStatus]int64
	ActiveOrders   int64
	CompletedTrips int64
	TotalCO2Kg     float64
	TotalRevenue   float64
	AverageRating  float64
}
