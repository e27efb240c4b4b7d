package position_reported

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	telemetryService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, telemetryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("consumer", "position.reported"))

	return &Handler{
		telemetryService:         telemetryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("position.reported: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("position.reported: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event kafka.PositionReported
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("position.reported: bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("trip", event.TripID),
		logger.NewField("offset", message.Offset),
	)

	update, err := h.telemetryService.Ingest(ctx, entities.PositionSample{
		TripID:    event.TripID,
		Position:  entities.Point{Lat: event.Lat, Lng: event.Lng},
		Timestamp: event.Timestamp,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.reported: context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, telemetry.ErrRateLimited):
			msgLog.Warn("position.reported: sample dropped by rate limit")

		case errors.Is(err, entities.ErrValidation),
			errors.Is(err, entities.ErrNotFound),
			errors.Is(err, entities.ErrStateConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.reported: sample rejected")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("position.reported: failed to ingest sample")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("outcome", string(update.Outcome)),
		logger.NewField("crossings", len(update.Crossings)),
		logger.NewField("progress", update.Trip.ProgressPercent()),
	).Info("position.reported: processed")

	sess.MarkMessage(message, "")
	return false
}
