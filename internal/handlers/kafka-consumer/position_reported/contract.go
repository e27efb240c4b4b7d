//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=position_reported_test
package position_reported

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
	Ingest(ctx context.Context, sample entities.PositionSample) (*entities.TelemetryUpdate, error)
}
