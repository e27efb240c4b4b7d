package params

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/httperr"

	"github.com/gorilla/mux"
)

// PathID положительный идентификатор из пути маршрута.
func PathID(r *http.Request) (int64, error) {
	return PathInt64(r, "id")
}

func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", httperr.ErrBadRequest, name, raw)
	}
	return id, nil
}

// QueryInt64 необязательный целочисленный параметр запроса.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", httperr.ErrBadRequest, name, raw)
	}
	return &v, nil
}

func QueryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", httperr.ErrBadRequest, name, raw)
	}
	return v, nil
}

func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q", httperr.ErrBadRequest, name, raw)
	}
	return v, nil
}

// DecodeJSON разбирает тело запроса, лишние поля запрещены.
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrBadRequest, err)
	}
	return nil
}
