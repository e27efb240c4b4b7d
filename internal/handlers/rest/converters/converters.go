package converters

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"

	"github.com/AlekSi/pointer"
)

func PointToDTO(p entities.Point) dto.Point {
	return dto.Point{Lat: p.Lat, Lng: p.Lng}
}

func PlaceToDTO(p entities.Place) dto.Place {
	place := dto.Place{Lat: p.Lat, Lng: p.Lng}
	if p.Label != "" {
		place.Label = pointer.ToString(p.Label)
	}
	return place
}

func PlaceFromDTO(p *dto.Place) *entities.Place {
	if p == nil {
		return nil
	}
	return &entities.Place{
		Point: entities.Point{Lat: p.Lat, Lng: p.Lng},
		Label: pointer.GetString(p.Label),
	}
}

func OrderToDTO(o *entities.Order) dto.Order {
	return dto.Order{
		ID:                    o.ID,
		ShipperID:             o.ShipperID,
		CarrierID:             o.CarrierID,
		TargetCarrierID:       o.TargetCarrierID,
		Description:           o.Cargo.Description,
		WeightKg:              o.Cargo.WeightKg,
		VolumeM3:              o.Cargo.VolumeM3,
		RequiresRefrigeration: pointer.ToBool(o.Cargo.RequiresRefrigeration),
		RequiresHazmat:        pointer.ToBool(o.Cargo.RequiresHazmat),
		Origin:                PlaceToDTO(o.Origin),
		Destination:           PlaceToDTO(o.Destination),
		Price:                 o.Price,
		PickupFrom:            o.PickupFrom,
		PickupTo:              o.PickupTo,
		DistanceKm:            o.DistanceKm,
		Co2EstimateKg:         o.CO2EstimateKg,
		Status:                o.Status.String(),
		CreatedAt:             o.CreatedAt,
		FinalizedAt:           o.FinalizedAt,
	}
}

func OrderListToDTO(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for i := range orders {
		res = append(res, OrderToDTO(&orders[i]))
	}
	return res
}

func OrderModifyFromDTO(in dto.OrderCreate) entities.OrderModify {
	return entities.OrderModify{
		Description:           in.Description,
		WeightKg:              in.WeightKg,
		VolumeM3:              in.VolumeM3,
		RequiresRefrigeration: in.RequiresRefrigeration,
		RequiresHazmat:        in.RequiresHazmat,
		Origin:                PlaceFromDTO(in.Origin),
		Destination:           PlaceFromDTO(in.Destination),
		Price:                 in.Price,
		PickupFrom:            in.PickupFrom,
		PickupTo:              in.PickupTo,
		TargetCarrierID:       in.TargetCarrierID,
	}
}

// TripToDTO вместе с производными полями: прогресс и ETA.
func TripToDTO(t *entities.Trip) dto.Trip {
	route := make([]dto.Point, 0, len(t.Route))
	for _, p := range t.Route {
		route = append(route, PointToDTO(p))
	}

	trip := dto.Trip{
		ID:                  t.ID,
		OrderID:             t.OrderID,
		CarrierID:           t.CarrierID,
		ShipperID:           pointer.ToInt64(t.ShipperID),
		Status:              t.Status.String(),
		Origin:              pointer.To(PlaceToDTO(t.Origin)),
		Destination:         pointer.To(PlaceToDTO(t.Destination)),
		Route:               &route,
		DistanceTotalKm:     t.DistanceTotalKm,
		DistanceTraveledKm:  t.DistanceTraveledKm,
		ProgressPercent:     t.ProgressPercent(),
		ElapsedMinutes:      pointer.ToFloat64(t.ElapsedMinutes),
		EstimatedMinutes:    pointer.ToFloat64(t.EstimatedMinutes),
		EtaMinutes:          t.ETAMinutes(),
		Stalled:             t.Stalled,
		StalledUrgent:       pointer.ToBool(t.StalledUrgent),
		StalledMinutes:      pointer.ToFloat64(t.StalledMinutes),
		TotalStalledMinutes: pointer.ToFloat64(t.TotalStalledMinutes),
		StartedAt:           pointer.ToTime(t.StartedAt),
		ExpectedArrivalAt:   pointer.ToTime(t.ExpectedArrivalAt),
		DeliveredAt:         t.DeliveredAt,
		OnTime:              t.OnTime,
		FinalizedAt:         t.FinalizedAt,
	}
	if t.CurrentPosition != nil {
		trip.CurrentPosition = pointer.To(PointToDTO(*t.CurrentPosition))
	}
	return trip
}

func TripListToDTO(trips []entities.Trip) []dto.Trip {
	res := make([]dto.Trip, 0, len(trips))
	for i := range trips {
		res = append(res, TripToDTO(&trips[i]))
	}
	return res
}

func TelemetryUpdateToDTO(u *entities.TelemetryUpdate) dto.TelemetryUpdate {
	crossings := make([]string, 0, len(u.Crossings))
	for _, c := range u.Crossings {
		crossings = append(crossings, c.Kind.String())
	}
	return dto.TelemetryUpdate{
		Outcome:   string(u.Outcome),
		Crossings: &crossings,
		Trip:      TripToDTO(u.Trip),
	}
}

func TruckToDTO(t entities.Truck) dto.Truck {
	return dto.Truck{
		Plate:        t.Plate,
		CapacityKg:   t.CapacityKg,
		VolumeM3:     pointer.ToFloat64(t.VolumeM3),
		FuelType:     t.Fuel.String(),
		Refrigerated: pointer.ToBool(t.Refrigerated),
		Hazmat:       pointer.ToBool(t.Hazmat),
	}
}

func TruckFromDTO(t *dto.Truck) *entities.Truck {
	if t == nil {
		return nil
	}
	fuel := entities.FuelType(t.FuelType)
	if fuel == "" {
		fuel = entities.DefaultFuelType
	}
	return &entities.Truck{
		Plate:        t.Plate,
		CapacityKg:   t.CapacityKg,
		VolumeM3:     pointer.GetFloat64(t.VolumeM3),
		Fuel:         fuel,
		Refrigerated: pointer.GetBool(t.Refrigerated),
		Hazmat:       pointer.GetBool(t.Hazmat),
	}
}

func CarrierToDTO(c *entities.Carrier) dto.Carrier {
	carrier := dto.Carrier{
		ID:                c.ID,
		Name:              c.Name,
		PositionUpdatedAt: c.PositionUpdatedAt,
		Available:         c.Available,
		Truck:             TruckToDTO(c.Truck),
		Rating:            c.Rating,
		RatingCount:       c.RatingCount,
		CompletedTrips:    c.CompletedTrips,
		CumulativeCo2Kg:   pointer.ToFloat64(c.CumulativeCO2Kg),
		ActiveEngagements: c.ActiveEngagements,
	}
	if c.Position != nil {
		carrier.Position = pointer.To(PointToDTO(*c.Position))
	}
	return carrier
}

func CarrierListToDTO(carriers []entities.Carrier) []dto.Carrier {
	res := make([]dto.Carrier, 0, len(carriers))
	for i := range carriers {
		res = append(res, CarrierToDTO(&carriers[i]))
	}
	return res
}

func CarrierStatsToDTO(s *entities.CarrierStats) dto.CarrierStats {
	return dto.CarrierStats{
		CarrierID:         pointer.ToInt64(s.CarrierID),
		CompletedTrips:    pointer.ToInt64(s.CompletedTrips),
		InProgressTrips:   pointer.ToInt64(s.InProgressTrips),
		CumulativeCo2Kg:   pointer.ToFloat64(s.CumulativeCO2Kg),
		Co2PerTripKg:      pointer.ToFloat64(s.CO2PerTripKg),
		TotalRevenue:      pointer.ToFloat64(s.TotalRevenue),
		RevenuePerTrip:    pointer.ToFloat64(s.RevenuePerTrip),
		TotalDistanceKm:   pointer.ToFloat64(s.TotalDistanceKm),
		Rating:            pointer.ToFloat64(s.Rating),
		RatingCount:       pointer.ToInt64(s.RatingCount),
		ActiveEngagements: pointer.ToInt(s.ActiveEngagements),
	}
}

func EngineStatsToDTO(s *entities.EngineStats) dto.EngineStats {
	byStatus := make(map[string]int64, len(s.OrdersByStatus))
	for status, n := range s.OrdersByStatus {
		byStatus[status.String()] = n
	}

	return dto.EngineStats{
		Carriers:       pointer.ToInt64(s.Carriers),
		OrdersTotal:    pointer.ToInt64(s.OrdersTotal),
		OrdersByStatus: &byStatus,
		ActiveOrders:   pointer.ToInt64(s.ActiveOrders),
		CompletedTrips: pointer.ToInt64(s.CompletedTrips),
		TotalCo2Kg:     pointer.ToFloat64(s.TotalCO2Kg),
		TotalRevenue:   pointer.ToFloat64(s.TotalRevenue),
		AverageRating:  pointer.ToFloat64(s.AverageRating),
	}
}

func CandidatesToDTO(scores []entities.CandidateScore) []dto.Candidate {
	res := make([]dto.Candidate, 0, len(scores))
	for i := range scores {
		res = append(res, CandidateToDTO(&scores[i]))
	}
	return res
}

func CandidateToDTO(s *entities.CandidateScore) dto.Candidate {
	reasons := append([]string{}, s.Reasons...)
	return dto.Candidate{
		Carrier:       pointer.To(CarrierToDTO(&s.Carrier)),
		DistanceKm:    s.DistanceKm,
		Tier:          pointer.ToString(string(s.Tier)),
		Compatible:    pointer.ToBool(s.Compatible),
		Reasons:       &reasons,
		Co2EstimateKg: pointer.ToFloat64(s.CO2EstimateKg),
	}
}

func OffersToDTO(offers []entities.OfferScore) []dto.Offer {
	res := make([]dto.Offer, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		reasons := append([]string{}, o.Reasons...)
		res = append(res, dto.Offer{
			Order:      pointer.To(OrderToDTO(&o.Order)),
			DistanceKm: pointer.ToFloat64(o.DistanceKm),
			Tier:       pointer.ToString(string(o.Tier)),
			Compatible: pointer.ToBool(o.Compatible),
			Reasons:    &reasons,
		})
	}
	return res
}

func FleetToDTO(entries []entities.FleetEntry) []dto.FleetEntry {
	res := make([]dto.FleetEntry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		res = append(res, dto.FleetEntry{
			Carrier:       pointer.To(CarrierToDTO(&e.Carrier)),
			DistanceKm:    e.DistanceKm,
			Tier:          pointer.ToString(string(e.Tier)),
			FreeInMinutes: e.FreeInMinutes,
		})
	}
	return res
}

func NotificationsToDTO(list []entities.Notification) []dto.Notification {
	res := make([]dto.Notification, 0, len(list))
	for i := range list {
		res = append(res, NotificationToDTO(&list[i]))
	}
	return res
}

func NotificationToDTO(n *entities.Notification) dto.Notification {
	return dto.Notification{
		ID:        pointer.ToInt64(n.ID),
		TripID:    pointer.ToInt64(n.TripID),
		OrderID:   pointer.ToInt64(n.OrderID),
		Kind:      pointer.ToString(n.Kind.String()),
		Message:   pointer.ToString(n.Message),
		Urgent:    pointer.ToBool(n.Urgent),
		Read:      pointer.ToBool(n.Read),
		CreatedAt: pointer.ToTime(n.CreatedAt),
	}
}

func RatingToDTO(r *entities.Rating) dto.Rating {
	return dto.Rating{
		ID:            pointer.ToInt64(r.ID),
		OrderID:       pointer.ToInt64(r.OrderID),
		CarrierID:     pointer.ToInt64(r.CarrierID),
		Score:         pointer.ToInt(r.Score),
		Punctuality:   r.Punctuality,
		CargoCare:     r.CargoCare,
		Communication: r.Communication,
		Comment:       pointer.ToString(r.Comment),
		CreatedAt:     pointer.ToTime(r.CreatedAt),
	}
}

func RatingsToDTO(list []entities.Rating) []dto.Rating {
	res := make([]dto.Rating, 0, len(list))
	for i := range list {
		res = append(res, RatingToDTO(&list[i]))
	}
	return res
}
