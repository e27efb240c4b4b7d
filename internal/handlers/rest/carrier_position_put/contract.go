//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_position_put_test
package carrier_position_put

import (
	"context"
	"time"

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
	ReportPosition(ctx context.Context, actor entities.Actor, p entities.Point, at time.Time) (*entities.Carrier, error)
}
