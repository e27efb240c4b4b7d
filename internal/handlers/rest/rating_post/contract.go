//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_post_test
package rating_post

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
	Rate(ctx context.Context, actor entities.Actor, orderID int64, m entities.RatingModify) (*entities.Rating, error)
}
