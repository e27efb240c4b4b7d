package stall_sweep

import (
	"context"
	"fmt"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	SweepStalls(ctx context.Context, now time.Time) (int, error)
}

// StallSweep пересчитывает простой у рейсов, от которых давно не было отметок.
type StallSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewStallSweep(log logger.Logger, service Service, interval time.Duration) *StallSweep {
	return &StallSweep{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (s *StallSweep) TTL() time.Duration {
	return s.interval
}

func (s *StallSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	emitted, err := s.service.SweepStalls(ctxWithTimeout, s.now().UTC())
	if emitted > 0 {
		s.log.With(
			logger.NewField("notifications", emitted),
		).Info("stall sweep")
	}
	if err != nil {
		return fmt.Errorf("sweep stalls: %w", err)
	}
	return nil
}

func (s *StallSweep) Info() string {
	return "stall sweep"
}
