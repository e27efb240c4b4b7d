package order_accept_post

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/handlers/rest/httperr"
	"dispatch/internal/handlers/rest/params"
	"dispatch/internal/pkg/middlewares/actor"
	"dispatch/pkg/logger"
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

	orderID, err := params.PathID(r)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	acceptance, err := h.service.AcceptOffer(r.Context(), who, orderID)
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	h.log.Info("offer accepted",
		logger.NewField("order_id", acceptance.Order.ID),
		logger.NewField("trip_id", acceptance.Trip.ID),
		logger.NewField("carrier_id", who.ID),
	)

	httperr.WriteJSON(w, h.log, http.StatusOK, dto.Acceptance{
		Order: converters.OrderToDTO(&acceptance.Order),
		Trip:  converters.TripToDTO(&acceptance.Trip),
	})
}
