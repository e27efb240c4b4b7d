//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_post_test
package carrier_post

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
	CreateCarrier(ctx context.Context, actor entities.Actor, m entities.CarrierModify) (*entities.Carrier, error)
}
