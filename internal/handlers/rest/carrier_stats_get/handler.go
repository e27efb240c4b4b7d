package carrier_stats_get

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

// ServeHTTP сводка перевозчика: рейсы, выбросы CO2, рейтинг.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	res, err := h.service.Stats(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CarrierStatsToDTO(res))
}
