package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoutingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routing_request_duration_seconds",
			Help:    "Duration of routing provider requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "outcome"},
	)

	RoutingRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_retries_total",
			Help: "Total number of routing requests that needed more than one attempt",
		},
		[]string{"provider"},
	)

	RoutingFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_fallback_total",
			Help: "Total number of routes served by straight-line fallback",
		},
		[]string{"reason"},
	)
)
