//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_confirm_post_test
package trip_confirm_post

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
	ConfirmDelivery(ctx context.Context, actor entities.Actor, tripID int64) (*entities.Trip, error)
}
