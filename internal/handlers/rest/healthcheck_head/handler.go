package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"dispatch/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	storage        Storage
	isShuttingDown *atomic.Bool
}

func New(log handlerLogger, storage Storage, isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		log:            log.With(logger.NewField("handler", "healthcheck")),
		storage:        storage,
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.log.Warn("storage is unavailable", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
