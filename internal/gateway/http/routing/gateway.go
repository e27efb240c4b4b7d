package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const providerName = "osrm"

const (
	// FallbackSegments число сегментов прямой линии, когда маршрута нет
	FallbackSegments = 20
	// FallbackMinutesPerKm грубая оценка времени для прямой линии
	FallbackMinutesPerKm = 1.2
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var errRetryable = errors.New("retryable routing error")

type Gateway struct {
	log     handlerLogger
	client  httpClient
	retrier retrier
	baseURL string
	timeout time.Duration
}

// New создает клиента OSRM. Пустой baseURL означает работу только на fallback.
func New(log handlerLogger, client httpClient, baseURL string, timeout time.Duration) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		log: log.With(
			logger.NewField("component", "routing-gateway"),
		),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Route никогда не возвращает ошибку: при недоступности провайдера строится
// прямая линия из FallbackSegments отрезков.
func (g *Gateway) Route(ctx context.Context, from, to entities.Point) entities.Route {
	if g.baseURL == "" {
		RoutingFallbackTotal.WithLabelValues("disabled").Inc()
		return Fallback(from, to)
	}

	route, err := g.fetch(ctx, from, to)
	if err != nil {
		reason := "unavailable"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		RoutingFallbackTotal.WithLabelValues(reason).Inc()

		g.log.With(
			logger.NewField("error", err),
			logger.NewField("from", from),
			logger.NewField("to", to),
		).Warn("routing provider failed, using straight-line fallback")
		return Fallback(from, to)
	}

	return route
}

// Fallback прямая линия с haversine-дистанцией и оценкой 1.2 мин/км.
func Fallback(from, to entities.Point) entities.Route {
	distance := geo.DistanceKm(from, to)
	return entities.Route{
		Points:          geo.Interpolate(from, to, FallbackSegments),
		DistanceKm:      distance,
		DurationMinutes: distance * FallbackMinutesPerKm,
		Fallback:        true,
	}
}

func (g *Gateway) fetch(ctx context.Context, from, to entities.Point) (entities.Route, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?%s",
		g.baseURL,
		from.Lng, from.Lat,
		to.Lng, to.Lat,
		url.Values{
			"overview":   []string{"full"},
			"geometries": []string{"geojson"},
		}.Encode(),
	)

	var route entities.Route
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		reqCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}

		var err error
		route, err = g.call(reqCtx, endpoint)
		return err
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	// Метрики Prometheus
	RoutingRequestDuration.WithLabelValues(providerName, outcome).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		RoutingRetriesTotal.WithLabelValues(providerName).Inc()
	}

	if err != nil {
		return entities.Route{}, &entities.RoutingUnavailableError{Cause: err}
	}
	return route, nil
}

func (g *Gateway) call(ctx context.Context, endpoint string) (entities.Route, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Route{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// сетевые ошибки и таймауты одной попытки ретраим
		return entities.Route{}, fmt.Errorf("%w: %w", errRetryable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return entities.Route{}, fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Route{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Route{}, fmt.Errorf("decode response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return entities.Route{}, fmt.Errorf("no route: code %q", body.Code)
	}

	route := toDomain(body.Routes[0])
	if len(route.Points) < 2 {
		return entities.Route{}, errors.New("route geometry is empty")
	}
	return route, nil
}

func isRetryable(err error) bool {
	return errors.Is(err, errRetryable)
}
