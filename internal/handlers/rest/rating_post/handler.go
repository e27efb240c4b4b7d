package rating_post

import (
	"fmt"
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

	var ratingDTO dto.RatingCreate
	if err := params.DecodeJSON(r, &ratingDTO); err != nil {
		httperr.Write(w, h.log, err)
		return
	}
	if ratingDTO.OrderID == nil {
		httperr.Write(w, h.log, fmt.Errorf("%w: order_id is required", httperr.ErrBadRequest))
		return
	}

	rating, err := h.service.Rate(r.Context(), who, *ratingDTO.OrderID, entities.RatingModify{
		Score:         ratingDTO.Score,
		Punctuality:   ratingDTO.Punctuality,
		CargoCare:     ratingDTO.CargoCare,
		Communication: ratingDTO.Communication,
		Comment:       ratingDTO.Comment,
	})
	if err != nil {
		httperr.Write(w, h.log, err)
		return
	}

	httperr.WriteJSON(w, h.log, http.StatusCreated, converters.RatingToDTO(rating))
}
