//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=carrier_offers_get_test
package carrier_offers_get

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
	OffersForCarrier(ctx context.Context, carrierID int64) ([]entities.OfferScore, error)
}
