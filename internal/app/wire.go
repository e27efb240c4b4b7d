//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/emission"
	carrierService "dispatch/internal/service/carrier"
	"dispatch/internal/service/matching"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	ratingService "dispatch/internal/service/rating"
	statsService "dispatch/internal/service/stats"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"

	"github.com/google/wire"
)

type Application struct {
	Storage           *Storage
	Orders            *orderService.Service
	Telemetry         *telemetry.Service
	Carriers          *carrierService.Carrier
	Matching          *matching.Service
	Notifications     *notificationService.Emitter
	Ratings           *ratingService.Service
	Stats             *statsService.Service
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	Storage   *Storage
	Telemetry *telemetry.Service
}

var domainSet = wire.NewSet(
	provideEngagementGuard,
	provideNotificationEmitter,
	provideTelemetryLimiter,
	provideTelemetryService,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		NewStorage,
		domainSet,

		emission.New,
		provideRoutingGateway,
		provideTransitionFactory,
		provideOrderService,
		provideCarrierService,
		provideMatchingService,
		provideRatingService,
		provideStatsService,

		provideStallSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-position-reported)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*KafkaWorkerApp, func(), error) {
	wire.Build(
		NewStorage,
		domainSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil, nil
}
