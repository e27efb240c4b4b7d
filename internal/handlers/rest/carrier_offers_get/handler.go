package carrier_offers_get

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

// ServeHTTP открытые заказы, отсортированные по близости к перевозчику.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	res, err := h.service.OffersForCarrier(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.OffersToDTO(res))
}
