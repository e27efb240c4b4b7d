package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TelemetrySamplesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_samples_total",
			Help: "Total number of position samples by outcome",
		},
		[]string{"outcome"},
	)

	TelemetryStallSweepTrips = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "telemetry_stall_sweep_trips",
			Help: "Number of in-progress trips inspected by the last stall sweep",
		},
	)
)
