package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Total number of committed order state transitions by target state",
	},
	[]string{"to"},
)
