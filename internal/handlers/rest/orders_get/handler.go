package orders_get

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

// ServeHTTP список заказов с фильтрами shipper_id, carrier_id и status.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusOK, converters.OrderListToDTO(orders))
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	shipperID, err := params.QueryInt64(r, "shipper_id")
	if err != nil {
		return filter, err
	}
	carrierID, err := params.QueryInt64(r, "carrier_id")
	if err != nil {
		return filter, err
	}
	filter.ShipperID = shipperID
	filter.CarrierID = carrierID

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.OrderStatus(raw)
		if !status.Valid() {
			return filter, fmt.Errorf("%w: status %q", httperr.ErrBadRequest, raw)
		}
		filter.Status = &status
	}
	return filter, nil
}
