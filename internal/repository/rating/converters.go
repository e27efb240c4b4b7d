package rating

import (
	"dispatch/internal/entities"
)

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}

	return &entities.Rating{
		ID:            r.ID,
		OrderID:       r.OrderID,
		CarrierID:     r.CarrierID,
		ShipperID:     r.ShipperID,
		Score:         r.Score,
		Punctuality:   r.Punctuality,
		CargoCare:     r.CargoCare,
		Communication: r.Communication,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

func ToDomainList(ratingsDB []RatingDB) []entities.Rating {
	if len(ratingsDB) == 0 {
		return []entities.Rating{}
	}

	result := make([]entities.Rating, len(ratingsDB))
	for i := range ratingsDB {
		result[i] = *ToDomain(&ratingsDB[i])
	}
	return result
}
