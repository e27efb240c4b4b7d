package routing

import "dispatch/internal/entities"

// ответ OSRM route/v1, нужные поля
type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64      `json:"distance"` // метры
	Duration float64      `json:"duration"` // секунды
	Geometry osrmGeometry `json:"geometry"`
}

type osrmGeometry struct {
	// GeoJSON LineString, пары [lon, lat]
	Coordinates [][]float64 `json:"coordinates"`
}

func toDomain(r osrmRoute) entities.Route {
	points := make([]entities.Point, 0, len(r.Geometry.Coordinates))
	for _, c := range r.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		points = append(points, entities.Point{Lat: c[1], Lng: c[0]})
	}

	return entities.Route{
		Points:          points,
		DistanceKm:      r.Distance / 1000,
		DurationMinutes: r.Duration / 60,
	}
}
