package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		ShipperID:       o.ShipperID,
		CarrierID:       o.CarrierID,
		TargetCarrierID: o.TargetCarrierID,
		Cargo: entities.Cargo{
			Description:           o.Description,
			WeightKg:              o.WeightKg,
			VolumeM3:              o.VolumeM3,
			RequiresRefrigeration: o.RequiresRefrigeration,
			RequiresHazmat:        o.RequiresHazmat,
		},
		Origin: entities.Place{
			Point: entities.Point{Lat: o.OriginLat, Lng: o.OriginLng},
			Label: o.OriginLabel,
		},
		Destination: entities.Place{
			Point: entities.Point{Lat: o.DestinationLat, Lng: o.DestinationLng},
			Label: o.DestinationLabel,
		},
		Price:         o.Price,
		PickupFrom:    o.PickupFrom,
		PickupTo:      o.PickupTo,
		DistanceKm:    o.DistanceKm,
		CO2EstimateKg: o.CO2EstimateKg,
		Status:        entities.OrderStatus(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		FinalizedAt:   o.FinalizedAt,
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	return &OrderDB{
		ID:                    o.ID,
		ShipperID:             o.ShipperID,
		CarrierID:             o.CarrierID,
		TargetCarrierID:       o.TargetCarrierID,
		Description:           o.Cargo.Description,
		WeightKg:              o.Cargo.WeightKg,
		VolumeM3:              o.Cargo.VolumeM3,
		RequiresRefrigeration: o.Cargo.RequiresRefrigeration,
		RequiresHazmat:        o.Cargo.RequiresHazmat,
		OriginLat:             o.Origin.Lat,
		OriginLng:             o.Origin.Lng,
		OriginLabel:           o.Origin.Label,
		DestinationLat:        o.Destination.Lat,
		DestinationLng:        o.Destination.Lng,
		DestinationLabel:      o.Destination.Label,
		Price:                 o.Price,
		PickupFrom:            o.PickupFrom,
		PickupTo:              o.PickupTo,
		DistanceKm:            o.DistanceKm,
		CO2EstimateKg:         o.CO2EstimateKg,
		Status:                o.Status.String(),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
		FinalizedAt:           o.FinalizedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
