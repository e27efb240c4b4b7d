package carrier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CarrierDB) *entities.Carrier {
	if c == nil {
		return nil
	}

	carrier := &entities.Carrier{
		ID:                c.ID,
		Name:              c.Name,
		PositionUpdatedAt: c.PositionUpdatedAt,
		Available:         c.Available,
		Truck: entities.Truck{
			Plate:        c.TruckPlate,
			CapacityKg:   c.TruckCapacityKg,
			VolumeM3:     c.TruckVolumeM3,
			Fuel:         entities.FuelType(c.FuelType),
			Refrigerated: c.Refrigerated,
			Hazmat:       c.Hazmat,
		},
		Rating:            c.Rating,
		RatingCount:       c.RatingCount,
		CompletedTrips:    c.CompletedTrips,
		CumulativeCO2Kg:   c.CumulativeCO2Kg,
		ActiveEngagements: c.ActiveEngagements,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.Lat != nil && c.Lng != nil {
		carrier.Position = &entities.Point{Lat: *c.Lat, Lng: *c.Lng}
	}
	return carrier
}

func FromDomainModify(m *entities.CarrierModify) *CarrierModifyDB {
	if m == nil {
		return nil
	}

	carrierDB := &CarrierModifyDB{
		ID:        m.ID,
		Name:      m.Name,
		Available: m.Available,
	}
	if m.Truck != nil {
		fuel := m.Truck.Fuel.String()
		carrierDB.TruckPlate = &m.Truck.Plate
		carrierDB.TruckCapacityKg = &m.Truck.CapacityKg
		carrierDB.TruckVolumeM3 = &m.Truck.VolumeM3
		carrierDB.FuelType = &fuel
		carrierDB.Refrigerated = &m.Truck.Refrigerated
		carrierDB.Hazmat = &m.Truck.Hazmat
	}
	return carrierDB
}

func ToDomainList(carriersDB []CarrierDB) []entities.Carrier {
	if len(carriersDB) == 0 {
		return []entities.Carrier{}
	}

	result := make([]entities.Carrier, len(carriersDB))
	for i := range carriersDB {
		result[i] = *ToDomain(&carriersDB[i])
	}
	return result
}
