package carrier_position_put

import (
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/handlers/rest/httperr"
	"dispatch/internal/handlers/rest/params"
	"dispatch/internal/pkg/middlewares/actor"
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

// ServeHTTP без timestamp отметка считается сделанной сейчас.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	who, err := actor.Require(r.Context())
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	var body dto.PositionUpdate
	if err := params.DecodeJSON(r, &body); err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	var at time.Time
	if body.Timestamp != nil {
		at = *body.Timestamp
	}

	carrier, err := h.service.ReportPosition(r.Context(), who, entities.Point{Lat: body.Lat, Lng: body.Lng}, at)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CarrierToDTO(carrier))
}
