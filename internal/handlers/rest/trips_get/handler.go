package trips_get

import (
	"fmt"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter entities.TripFilter

	shipperID, err := params.QueryInt64(r, "shipper_id")
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}
	carrierID, err := params.QueryInt64(r, "carrier_id")
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}
	filter.ShipperID = shipperID
	filter.CarrierID = carrierID

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.TripStatus(raw)
		if !status.Valid() {
			httperr.Write(w, h.log, fmt.Errorf("%w: status %q", httperr.ErrBadRequest, raw))
			return
		}
		filter.Status = &status
	}

	trips, err := h.service.ListTrips(r.Context(), filter)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.TripListToDTO(trips))
}
