package geo

import "math"

// EarthRadiusKm средний радиус Земли, используется во всех расчетах расстояний.
const EarthRadiusKm = 6371.0

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceKm расстояние по большому кругу (haversine).
func DistanceKm(a, b Point) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Interpolate делит отрезок a-b на segments частей и возвращает segments+1 точек,
// включая обе границы.
func Interpolate(a, b Point, segments int) []Point {
	if segments < 1 {
		segments = 1
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, Point{
			Lat: a.Lat + (b.Lat-a.Lat)*t,
			Lng: a.Lng + (b.Lng-a.Lng)*t,
		})
	}
	return points
}

func PolylineLengthKm(route []Point) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		total += DistanceKm(route[i-1], route[i])
	}
	return total
}

// Project находит ближайшую к p точку на ломаной и возвращает пройденное вдоль нее
// расстояние до этой точки и отклонение p от маршрута, оба в км.
// Сегменты проецируются в локальной равнопромежуточной проекции, для коротких
// сегментов маршрута погрешность пренебрежимо мала.
func Project(route []Point, p Point) (alongKm, offsetKm float64) {
	switch len(route) {
	case 0:
		return 0, 0
	case 1:
		return 0, DistanceKm(route[0], p)
	}

	offsetKm = math.Inf(1)
	var walked float64
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		segmentKm := DistanceKm(a, b)

		t := projectionFactor(a, b, p)
		onSegment := Point{
			Lat: a.Lat + (b.Lat-a.Lat)*t,
			Lng: a.Lng + (b.Lng-a.Lng)*t,
		}

		d := DistanceKm(onSegment, p)
		if d < offsetKm {
			offsetKm = d
			alongKm = walked + DistanceKm(a, onSegment)
		}
		walked += segmentKm
	}
	return alongKm, offsetKm
}

func projectionFactor(a, b, p Point) float64 {
	cosLat := math.Cos(toRad((a.Lat + b.Lat) / 2))

	bx, by := (b.Lng-a.Lng)*cosLat, b.Lat-a.Lat
	px, py := (p.Lng-a.Lng)*cosLat, p.Lat-a.Lat

	lengthSq := bx*bx + by*by
	if lengthSq == 0 {
		return 0
	}

	t := (px*bx + py*by) / lengthSq
	return math.Max(0, math.Min(1, t))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
