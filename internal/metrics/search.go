package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	EntitySearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "omnisearch",
			Name:      "entity_search_duration_seconds",
			Help:      "Per-entity search branch duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"entity_type"},
	)

	EntitySearchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnisearch",
			Name:      "entity_search_failures_total",
			Help:      "Total entity search branch failures absorbed by the fan-out",
		},
		[]string{"entity_type"},
	)

	GlobalSearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "omnisearch",
			Name:      "global_searches_total",
			Help:      "Total global searches executed",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(EntitySearchDuration)
	prometheus.MustRegister(EntitySearchFailures)
	prometheus.MustRegister(GlobalSearchesTotal)
	searchMetricsRegistered = true
}

// ObserveEntitySearch records one fan-out branch outcome.
func ObserveEntitySearch(entityType string, duration time.Duration, failed bool) {
	EntitySearchDuration.WithLabelValues(entityType).Observe(duration.Seconds())
	if failed {
		EntitySearchFailures.WithLabelValues(entityType).Inc()
	}
}
