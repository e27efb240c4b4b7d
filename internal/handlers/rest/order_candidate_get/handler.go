package order_candidate_get

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

// ServeHTTP оценка одного перевозчика для заказа, даже если он не проходит фильтры ранжирования.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}
	carrierID, err := params.PathInt64(r, "carrier_id")
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	score, err := h.service.ScoreCarrier(r.Context(), orderID, carrierID)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.CandidateToDTO(score))
}
