//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_get_test
package trip_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTelemetry(ctx context.Context, tripID int64) (*entities.Trip, error)
}
