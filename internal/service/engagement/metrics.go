package engagement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EngagementDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engagement_decisions_total",
		Help: "Total number of engagement slot decisions by result",
	},
	[]string{"result"},
)
