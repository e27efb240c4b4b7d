//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carriers_get_test
package carriers_get

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
	GetCarriers(ctx context.Context) ([]entities.Carrier, error)
}
