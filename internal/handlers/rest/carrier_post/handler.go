package carrier_post

import (
	"net/http"

	"dispatch/internal/entities"
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

	var carrierDTO dto.CarrierCreate
	if err := params.DecodeJSON(r, &carrierDTO); err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	carrier, err := h.service.CreateCarrier(r.Context(), who, entities.CarrierModify{
		Name:      carrierDTO.Name,
		Available: carrierDTO.Available,
		Truck:     converters.TruckFromDTO(carrierDTO.Truck),
	})
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusCreated, converters.CarrierToDTO(carrier))
}
