package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/carrier"
	"dispatch/internal/service/rating"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// ErrBadRequest тело или параметры запроса не разобрать.
var ErrBadRequest = errors.New("malformed request")

// Status HTTP-код для ошибки сервисного слоя.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrStateConflict),
		errors.Is(err, entities.ErrLimitExceeded),
		errors.Is(err, rating.ErrAlreadyRated),
		errors.Is(err, carrier.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entities.ErrStaleLocation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, telemetry.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Body JSON-ответ с контекстом типизированной ошибки.
func Body(err error) dto.Error {
	status := Status(err)
	body := dto.Error{
		Error:   codes[status],
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		body.Message = "internal error"
	}

	var (
		validation *entities.ValidationError
		notFound   *entities.NotFoundError
		conflict   *entities.StateConflictError
		limit      *entities.LimitExceededError
		stale      *entities.StaleLocationError
	)
	switch {
	case errors.As(err, &validation):
		body.Field = &validation.Field
	case errors.As(err, &notFound):
		body.Entity = &notFound.Entity
		body.ID = &notFound.ID
	case errors.As(err, &conflict):
		body.Entity = &conflict.Entity
		body.ID = &conflict.ID
		body.From = &conflict.From
		body.To = &conflict.To
	case errors.As(err, &limit):
		entity := "carrier"
		body.Entity = &entity
		body.ID = &limit.CarrierID
	case errors.As(err, &stale):
		entity := "carrier"
		body.Entity = &entity
		body.ID = &stale.CarrierID
	}
	return body
}

var codes = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "stale_location",
	http.StatusTooManyRequests:     "rate_limited",
	http.StatusGatewayTimeout:      "timeout",
	http.StatusInternalServerError: "internal",
}

// Write пишет ошибку в ответ. Пятисотые логируются с исходной ошибкой.
func Write(w http.ResponseWriter, log errorLogger, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(Body(err)); encodeErr != nil {
		log.Error("encode JSON response", logger.NewField("error", encodeErr))
	}
}

// WriteJSON успешный ответ.
func WriteJSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
