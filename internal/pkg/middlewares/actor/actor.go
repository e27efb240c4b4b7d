package actor

import (
	"context"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/httperr"
)

const (
	HeaderID   = "X-Actor-ID"
	HeaderRole = "X-Actor-Role"
)

// ErrMissing операция требует заголовков X-Actor-ID и X-Actor-Role.
var ErrMissing = entities.ErrUnauthenticated

type ctxKey struct{}

// Middleware кладет в контекст актора из заголовков. Без заголовков запрос
// проходит дальше анонимным, битые заголовки отклоняются сразу.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID, rawRole := r.Header.Get(HeaderID), r.Header.Get(HeaderRole)
			if rawID == "" && rawRole == "" {
				next.ServeHTTP(w, r)
				return
			}

			a, err := parse(rawID, rawRole)
			if err != nil {
				httperr.Write(w, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), a)))
		})
	}
}

func parse(rawID, rawRole string) (entities.Actor, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, entities.NewValidationError(HeaderID, "must be a positive integer")
	}
	role := entities.Role(rawRole)
	if !role.Valid() {
		return entities.Actor{}, entities.NewValidationError(HeaderRole, "must be one of shipper, carrier, admin")
	}
	return entities.Actor{ID: id, Role: role}, nil
}

func WithActor(ctx context.Context, a entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (entities.Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return a, ok
}

// Require актор для изменяющих операций.
func Require(ctx context.Context) (entities.Actor, error) {
	a, ok := FromContext(ctx)
	if !ok {
		return entities.Actor{}, ErrMissing
	}
	return a, nil
}
