package trip_position_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/handlers/rest/httperr"
	"dispatch/internal/handlers/rest/params"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tripID, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	var sampleDTO dto.PositionSample
	if err := params.DecodeJSON(r, &sampleDTO); err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	update, err := h.service.Ingest(r.Context(), entities.PositionSample{
		TripID:    tripID,
		Position:  entities.Point{Lat: sampleDTO.Lat, Lng: sampleDTO.Lng},
		Timestamp: sampleDTO.Timestamp,
	})
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	if update.Outcome != entities.SampleApplied {
		h.log.Info("position sample skipped",
			logger.NewField("trip_id", tripID),
			logger.NewField("outcome", string(update.Outcome)),
		)
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.TelemetryUpdateToDTO(update))
}
