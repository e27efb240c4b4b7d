package carriers_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/handlers/rest/httperr"
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
	carriers, err := h.service.GetCarriers(r.Context())
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CarrierListToDTO(carriers))
}
