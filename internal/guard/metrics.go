package guard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts admission decisions by outcome.
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "amastore",
			Subsystem: "guard",
			Name:      "decisions_total",
			Help:      "Total number of dashboard admission decisions",
		},
		[]string{"outcome"},
	)

	// LookupDuration measures identity provider lookups.
	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "amastore",
			Subsystem: "guard",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of identity provider session lookups in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func recordDecision(o Outcome, seconds float64) {
	DecisionsTotal.WithLabelValues(o.String()).Inc()
	LookupDuration.Observe(seconds)
}
