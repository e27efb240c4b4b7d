package simulator

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/pkg/kafka"
	"dispatch/pkg/geo"
	"dispatch/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	samplesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simulator_samples_published_total",
		Help: "Отметки позиции, отправленные симулятором",
	}, []string{"result"})

	publishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulator_publish_duration_seconds",
		Help:    "Время отправки одной отметки",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

type Publisher interface {
	PublishPosition(ctx context.Context, event kafka.PositionReported) error
}

type Config struct {
	TripID   int64
	From     geo.Point
	To       geo.Point
	Steps    int
	Interval time.Duration
}

type Simulator struct {
	log       logger.Logger
	publisher Publisher
	now       func() time.Time
}

func New(log logger.Logger, publisher Publisher) *Simulator {
	return &Simulator{
		log:       log.With(logger.NewField("component", "position-simulator")),
		publisher: publisher,
		now:       time.Now,
	}
}

// Drive ведет грузовик по прямой from -> to, отправляя Steps+1 отметок.
func (s *Simulator) Drive(ctx context.Context, cfg Config) (int, error) {
	if !cfg.From.Valid() || !cfg.To.Valid() {
		return 0, fmt.Errorf("invalid route %v -> %v", cfg.From, cfg.To)
	}

	route := geo.Interpolate(cfg.From, cfg.To, cfg.Steps)
	driveLog := s.log.With(
		logger.NewField("trip", cfg.TripID),
		logger.NewField("points", len(route)),
	)
	driveLog.Info("simulation started")

	var ticker *time.Ticker
	if cfg.Interval > 0 {
		ticker = time.NewTicker(cfg.Interval)
		defer ticker.Stop()
	}

	sent := 0
	for i, p := range route {
		if i > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return sent, ctx.Err()
			case <-ticker.C:
			}
		}

		start := time.Now()
		err := s.publisher.PublishPosition(ctx, kafka.PositionReported{
			TripID:    cfg.TripID,
			Lat:       p.Lat,
			Lng:       p.Lng,
			Timestamp: s.now().UTC(),
		})
		publishDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			samplesPublished.WithLabelValues("error").Inc()
			return sent, fmt.Errorf("point %d: %w", i, err)
		}
		samplesPublished.WithLabelValues("ok").Inc()
		sent++
	}

	driveLog.Info("simulation finished", logger.NewField("sent", sent))
	return sent, nil
}
