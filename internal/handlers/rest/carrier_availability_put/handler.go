package carrier_availability_put

import (
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	who, err := actor.Require(r.Context())
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	var body dto.AvailabilityUpdate
	if err := params.DecodeJSON(r, &body); err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	carrier, err := h.service.UpdateAvailability(r.Context(), who, body.Available)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CarrierToDTO(carrier))
}
