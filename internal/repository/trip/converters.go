package trip

import (
	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:        t.ID,
		OrderID:   t.OrderID,
		CarrierID: t.CarrierID,
		ShipperID: t.ShipperID,
		Origin: entities.Place{
			Point: entities.Point{Lat: t.OriginLat, Lng: t.OriginLng},
			Label: t.OriginLabel,
		},
		Destination: entities.Place{
			Point: entities.Point{Lat: t.DestinationLat, Lng: t.DestinationLng},
			Label: t.DestinationLabel,
		},
		Route:                t.Route,
		DistanceTotalKm:      t.DistanceTotalKm,
		DistanceTraveledKm:   t.DistanceTraveledKm,
		CurrentPosition:      toPoint(t.CurrentLat, t.CurrentLng),
		ElapsedMinutes:       t.ElapsedMinutes,
		EstimatedMinutes:     t.EstimatedMinutes,
		Stalled:              t.Stalled,
		StalledUrgent:        t.StalledUrgent,
		StalledMinutes:       t.StalledMinutes,
		TotalStalledMinutes:  t.TotalStalledMinutes,
		StallEpisode:         t.StallEpisode,
		LastSampleAt:         t.LastSampleAt,
		LastMovementAt:       t.LastMovementAt,
		LastMovementPosition: toPoint(t.LastMovementLat, t.LastMovementLng),
		StartedAt:            t.StartedAt,
		ExpectedArrivalAt:    t.ExpectedArrivalAt,
		DeliveredAt:          t.DeliveredAt,
		OnTime:               t.OnTime,
		FinalizedAt:          t.FinalizedAt,
		Status:               entities.TripStatus(t.Status),
		UpdatedAt:            t.UpdatedAt,
	}
}

func FromDomain(t *entities.Trip) *TripDB {
	if t == nil {
		return nil
	}

	// пустой маршрут хранится как [], а не NULL
	route := t.Route
	if route == nil {
		route = []geo.Point{}
	}

	tripDB := &TripDB{
		ID:                  t.ID,
		OrderID:             t.OrderID,
		CarrierID:           t.CarrierID,
		ShipperID:           t.ShipperID,
		OriginLat:           t.Origin.Lat,
		OriginLng:           t.Origin.Lng,
		OriginLabel:         t.Origin.Label,
		DestinationLat:      t.Destination.Lat,
		DestinationLng:      t.Destination.Lng,
		DestinationLabel:    t.Destination.Label,
		Route:               route,
		DistanceTotalKm:     t.DistanceTotalKm,
		DistanceTraveledKm:  t.DistanceTraveledKm,
		ElapsedMinutes:      t.ElapsedMinutes,
		EstimatedMinutes:    t.EstimatedMinutes,
		Stalled:             t.Stalled,
		StalledUrgent:       t.StalledUrgent,
		StalledMinutes:      t.StalledMinutes,
		TotalStalledMinutes: t.TotalStalledMinutes,
		StallEpisode:        t.StallEpisode,
		LastSampleAt:        t.LastSampleAt,
		LastMovementAt:      t.LastMovementAt,
		StartedAt:           t.StartedAt,
		ExpectedArrivalAt:   t.ExpectedArrivalAt,
		DeliveredAt:         t.DeliveredAt,
		OnTime:              t.OnTime,
		FinalizedAt:         t.FinalizedAt,
		Status:              t.Status.String(),
		UpdatedAt:           t.UpdatedAt,
	}
	if t.CurrentPosition != nil {
		tripDB.CurrentLat = &t.CurrentPosition.Lat
		tripDB.CurrentLng = &t.CurrentPosition.Lng
	}
	if t.LastMovementPosition != nil {
		tripDB.LastMovementLat = &t.LastMovementPosition.Lat
		tripDB.LastMovementLng = &t.LastMovementPosition.Lng
	}
	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i := range tripsDB {
		result[i] = *ToDomain(&tripsDB[i])
	}
	return result
}

func toPoint(lat, lng *float64) *entities.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.Point{Lat: *lat, Lng: *lng}
}
