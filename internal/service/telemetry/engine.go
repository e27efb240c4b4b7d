package telemetry

import (
	"math"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

const (
	DefaultJitterKm = 0.05

	StalledAfterMinutes = 30.0
	UrgentAfterMinutes  = 60.0

	HalfwayFromPercent = 45.0
	HalfwayToPercent   = 55.0
	NearArrivalPercent = 85.0

	DefaultMaxClockSkew = 5 * time.Minute
)

// Engine чистые вычисления телеметрии рейса, без ввода-вывода.
type Engine struct {
	jitterKm     float64
	maxClockSkew time.Duration
}

func NewEngine(jitterKm float64, maxClockSkew time.Duration) *Engine {
	if jitterKm <= 0 {
		jitterKm = DefaultJitterKm
	}
	if maxClockSkew <= 0 {
		maxClockSkew = DefaultMaxClockSkew
	}
	return &Engine{jitterKm: jitterKm, maxClockSkew: maxClockSkew}
}

// CheckClock отклоняет отметку, которая опережает часы сервера больше допуска.
func (e *Engine) CheckClock(ts, now time.Time) error {
	if ts.After(now.Add(e.maxClockSkew)) {
		return entities.NewValidationError("timestamp", "ahead of server clock")
	}
	return nil
}

type Result struct {
	Outcome   entities.TelemetryOutcome
	Moved     bool
	Crossings []entities.Crossing
}

// Apply применяет отметку к рейсу на месте. Дубликаты и отметки из прошлого
// рейс не меняют.
func (e *Engine) Apply(trip *entities.Trip, sample entities.PositionSample) Result {
	ts := sample.Timestamp.UTC()

	if ts.Before(trip.StartedAt) {
		return Result{Outcome: entities.SampleOutOfOrder}
	}
	if trip.LastSampleAt != nil && !ts.After(*trip.LastSampleAt) {
		if ts.Equal(*trip.LastSampleAt) {
			return Result{Outcome: entities.SampleDuplicate}
		}
		return Result{Outcome: entities.SampleOutOfOrder}
	}

	before := trip.ProgressPercent()

	candidate := e.candidateKm(trip, sample.Position)
	moved := candidate > trip.DistanceTraveledKm+e.jitterKm
	if moved {
		trip.DistanceTraveledKm = math.Min(candidate, trip.DistanceTotalKm)
		trip.LastMovementAt = &ts
		position := sample.Position
		trip.LastMovementPosition = &position
		endStall(trip)
	}

	position := sample.Position
	trip.CurrentPosition = &position
	trip.LastSampleAt = &ts
	trip.ElapsedMinutes = math.Max(trip.ElapsedMinutes, ts.Sub(trip.StartedAt).Minutes())

	var crossings []entities.Crossing
	crossings = append(crossings, progressCrossings(before, trip.ProgressPercent())...)
	crossings = append(crossings, evaluateStall(trip, ts)...)

	return Result{
		Outcome:   entities.SampleApplied,
		Moved:     moved,
		Crossings: crossings,
	}
}

// Tick пересчитывает время и простой молчащего рейса на момент now.
func (e *Engine) Tick(trip *entities.Trip, now time.Time) []entities.Crossing {
	if trip.Status != entities.TripInProgress {
		return nil
	}

	now = now.UTC()
	trip.ElapsedMinutes = math.Max(trip.ElapsedMinutes, now.Sub(trip.StartedAt).Minutes())
	return evaluateStall(trip, now)
}

func (e *Engine) candidateKm(trip *entities.Trip, p entities.Point) float64 {
	if len(trip.Route) >= 2 {
		along, _ := geo.Project(trip.Route, p)
		routeKm := geo.PolylineLengthKm(trip.Route)
		if routeKm <= 0 {
			return trip.DistanceTraveledKm
		}
		return along * trip.DistanceTotalKm / routeKm
	}

	from := trip.Origin.Point
	if trip.LastMovementPosition != nil {
		from = *trip.LastMovementPosition
	}

	// удаление от точки назначения считаем шумом, а не движением
	remainingBefore := geo.DistanceKm(from, trip.Destination.Point)
	remainingAfter := geo.DistanceKm(p, trip.Destination.Point)
	if remainingAfter > remainingBefore+e.jitterKm {
		return trip.DistanceTraveledKm
	}

	return trip.DistanceTraveledKm + geo.DistanceKm(from, p)
}

func endStall(trip *entities.Trip) {
	trip.TotalStalledMinutes += trip.StalledMinutes
	trip.StalledMinutes = 0
	trip.Stalled = false
	trip.StalledUrgent = false
}

func evaluateStall(trip *entities.Trip, now time.Time) []entities.Crossing {
	since := trip.StartedAt
	if trip.LastMovementAt != nil {
		since = *trip.LastMovementAt
	}

	idle := now.Sub(since).Minutes()
	if idle < StalledAfterMinutes {
		return nil
	}

	var crossings []entities.Crossing
	if !trip.Stalled {
		trip.Stalled = true
		trip.StallEpisode++
		crossings = append(crossings, entities.Crossing{Kind: entities.EventStalled, Episode: trip.StallEpisode})
	}
	trip.StalledMinutes = math.Max(trip.StalledMinutes, idle)

	if idle >= UrgentAfterMinutes && !trip.StalledUrgent {
		trip.StalledUrgent = true
		crossings = append(crossings, entities.Crossing{
			Kind:    entities.EventStalledUrgent,
			Episode: trip.StallEpisode,
			Urgent:  true,
		})
	}
	return crossings
}

// окна срабатывают при входе в них
func progressCrossings(before, after float64) []entities.Crossing {
	var crossings []entities.Crossing
	if inHalfway(after) && !inHalfway(before) {
		crossings = append(crossings, entities.Crossing{Kind: entities.EventHalfway})
	}
	if inNearArrival(after) && !inNearArrival(before) {
		crossings = append(crossings, entities.Crossing{Kind: entities.EventNearArrival})
	}
	return crossings
}

func inHalfway(p float64) bool {
	return p >= HalfwayFromPercent && p <= HalfwayToPercent
}

func inNearArrival(p float64) bool {
	return p >= NearArrivalPercent && p < 100
}
