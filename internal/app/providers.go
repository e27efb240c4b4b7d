package app

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/gateway/http/routing"
	"dispatch/internal/handlers/tasks/stall_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/emission"
	"dispatch/internal/pkg/factory/order_transition"
	carrierService "dispatch/internal/service/carrier"
	"dispatch/internal/service/engagement"
	"dispatch/internal/service/matching"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	ratingService "dispatch/internal/service/rating"
	statsService "dispatch/internal/service/stats"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/token_bucket"
)

// простаивающие ведра рейсов вычищаются через этот интервал
const telemetryLimiterIdleTTL = 10 * time.Minute

func provideCarrierService(storage *Storage, emissionFactory *emission.EmissionFactory) *carrierService.Carrier {
	return carrierService.New(storage.Carriers, storage.Orders, storage.Trips, emissionFactory, storage.TxManager)
}

func provideEngagementGuard(storage *Storage) *engagement.Guard {
	return engagement.New(storage.Carriers)
}

func provideNotificationEmitter(storage *Storage) *notificationService.Emitter {
	return notificationService.New(storage.Notifications)
}

func provideRoutingGateway(log logger.Logger, cfg *config.Config) *routing.Gateway {
	client := &http.Client{Timeout: cfg.Routing.Timeout}
	return routing.New(log, client, cfg.Routing.OSRMURL, cfg.Routing.Timeout)
}

func provideTransitionFactory(
	storage *Storage,
	guard *engagement.Guard,
	emitter *notificationService.Emitter,
) *order_transition.TransitionHandlerFactory {
	return order_transition.NewTransitionHandlerFactory(guard, storage.Carriers, emitter)
}

func provideOrderService(
	storage *Storage,
	guard *engagement.Guard,
	routingGateway *routing.Gateway,
	emissionFactory *emission.EmissionFactory,
	transitions *order_transition.TransitionHandlerFactory,
) *orderService.Service {
	return orderService.New(
		storage.Orders,
		storage.Trips,
		storage.Carriers,
		guard,
		routingGateway,
		emissionFactory,
		transitions,
		storage.TxManager,
	)
}

func provideMatchingService(storage *Storage, emissionFactory *emission.EmissionFactory) *matching.Service {
	return matching.New(storage.Carriers, storage.Orders, storage.Trips, emissionFactory)
}

func provideTelemetryLimiter(cfg *config.Config) *token_bucket.KeyedLimiter {
	return token_bucket.NewKeyedLimiter(cfg.Telemetry.RateLimitBurst, cfg.Telemetry.RateLimitQPS, telemetryLimiterIdleTTL)
}

func provideTelemetryService(
	cfg *config.Config,
	storage *Storage,
	emitter *notificationService.Emitter,
	limiter *token_bucket.KeyedLimiter,
) *telemetry.Service {
	return telemetry.New(
		telemetry.NewEngine(cfg.Telemetry.JitterKm, cfg.Telemetry.MaxClockSkew),
		storage.Trips,
		storage.Orders,
		storage.Carriers,
		emitter,
		limiter,
		storage.TxManager,
	)
}

func provideRatingService(storage *Storage) *ratingService.Service {
	return ratingService.New(storage.Ratings, storage.Orders, storage.Carriers, storage.TxManager)
}

func provideStatsService(storage *Storage) *statsService.Service {
	return statsService.New(storage.Stats)
}

func provideStallSweepTask(log logger.Logger, cfg *config.Config, service *telemetry.Service) *stall_sweep.StallSweep {
	return stall_sweep.NewStallSweep(log, service, cfg.Tasks.StallSweepInterval)
}

func provideTaskList(stallSweepTask *stall_sweep.StallSweep) []background.Task {
	return []background.Task{
		stallSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
