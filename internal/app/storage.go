package app

import (
	"context"
	"fmt"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/postgres"
	"dispatch/internal/repository/carrier"
	"dispatch/internal/repository/memory"
	"dispatch/internal/repository/notification"
	"dispatch/internal/repository/order"
	"dispatch/internal/repository/rating"
	"dispatch/internal/repository/stats"
	"dispatch/internal/repository/trip"
	carrierService "dispatch/internal/service/carrier"
	"dispatch/internal/service/engagement"
	"dispatch/internal/service/matching"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	ratingService "dispatch/internal/service/rating"
	statsService "dispatch/internal/service/stats"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

type (
	CarrierStore interface {
		carrierService.Repository
		engagement.CarrierRepository
		matching.CarrierRepository
		orderService.CarrierRepository
		ratingService.CarrierRepository
		telemetry.CarrierRepository
	}

	OrderStore interface {
		carrierService.OrderRepository
		orderService.OrderRepository
		matching.OrderRepository
		ratingService.OrderRepository
		telemetry.OrderRepository
	}

	TripStore interface {
		carrierService.TripRepository
		orderService.TripRepository
		matching.TripRepository
		telemetry.TripRepository
	}

	NotificationStore interface {
		notificationService.Repository
	}

	RatingStore interface {
		ratingService.Repository
	}

	StatsStore interface {
		statsService.Repository
	}

	TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}
)

// Storage набор репозиториев одного драйвера.
type Storage struct {
	Carriers      CarrierStore
	Orders        OrderStore
	Trips         TripStore
	Notifications NotificationStore
	Ratings       RatingStore
	Stats         StatsStore
	TxManager     TxManager
	Health        Pinger
}

// NewStorage открывает хранилище по STORAGE_DRIVER. Для postgres накатывает
// миграции; cleanup закрывает пул.
func NewStorage(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return newMemoryStorage(), func() {}, nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}

		q := querier.New(pool, pgxv5.DefaultCtxGetter)
		storage := &Storage{
			Carriers:      carrier.New(q),
			Orders:        order.New(q),
			Trips:         trip.New(q),
			Notifications: notification.New(q),
			Ratings:       rating.New(q),
			Stats:         stats.New(q),
			TxManager:     tx.New(pool),
			Health:        q,
		}
		return storage, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newMemoryStorage() *Storage {
	store := memory.NewStore()
	return &Storage{
		Carriers:      store.Carriers(),
		Orders:        store.Orders(),
		Trips:         store.Trips(),
		Notifications: store.Notifications(),
		Ratings:       store.Ratings(),
		Stats:         store.Stats(),
		TxManager:     store.TxManager(),
		Health:        store,
	}
}
