package notification

import (
	"fmt"
	"math"

	"dispatch/internal/entities"
)

func message(kind entities.EventKind, order *entities.Order, trip *entities.Trip) string {
	route := fmt.Sprintf("%s -> %s", placeName(trip.Origin), placeName(trip.Destination))

	switch kind {
	case entities.EventOfferAccepted:
		return fmt.Sprintf("Carrier %d accepted load %d (%s)", trip.CarrierID, order.ID, route)
	case entities.EventHalfway:
		return fmt.Sprintf("Truck %s is halfway", route)
	case entities.EventNearArrival:
		return fmt.Sprintf("Truck is about to arrive at %s (%d min)",
			placeName(trip.Destination), int(math.Round(trip.ETAMinutes())))
	case entities.EventStalled, entities.EventStalledUrgent:
		return fmt.Sprintf("Truck %s has been stopped for %d minutes", route, int(trip.StalledMinutes))
	case entities.EventDelivered:
		return fmt.Sprintf("Load %d was delivered at %s, please confirm", order.ID, placeName(trip.Destination))
	case entities.EventFinalized:
		return fmt.Sprintf("Delivery of load %d was confirmed", order.ID)
	default:
		return string(kind)
	}
}

func placeName(p entities.Place) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng)
}
