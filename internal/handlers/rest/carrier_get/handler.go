package carrier_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/handlers/rest/httperr"
	"dispatch/internal/handlers/rest/params"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	res, err := h.service.GetCarrier(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CarrierToDTO(res))
}
