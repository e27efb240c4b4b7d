package carriers_nearby_get

import (
	"net/http"

	"dispatch/internal/entities"
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

// ServeHTTP флот вокруг точки lat/lng по уровням удаленности.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lat, err := params.QueryFloat(r, "lat")
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}
	lng, err := params.QueryFloat(r, "lng")
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	fleet, err := h.service.NearbyCarriers(r.Context(), entities.Point{Lat: lat, Lng: lng})
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.FleetToDTO(fleet))
}
