// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weather_lookup"

var (
	// Lookups counts submitted resolve → fetch chains by outcome.
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of submitted lookups by outcome",
		},
		[]string{"outcome"},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of resolve and fetch in seconds",
			Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"outcome"},
	)

	// GeocodingSearches counts geocoding requests by strategy ("full" or "city").
	GeocodingSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocoding_searches_total",
			Help:      "Total number of geocoding searches by strategy",
		},
		[]string{"strategy"},
	)

	SuggestionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_failures_total",
			Help:      "Total number of swallowed suggestion lookup failures",
		},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Total number of failed upstream calls by service",
		},
		[]string{"service"},
	)

	StaleResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Results discarded because a newer request was issued",
		},
		[]string{"kind"},
	)

	HistoryStorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_storage_errors_total",
			Help:      "Recovered search history storage failures by operation",
		},
		[]string{"op"},
	)
)

// ObserveLookup records one lookup.
func ObserveLookup(outcome string, d time.Duration) {
	Lookups.WithLabelValues(outcome).Inc()
	LookupDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
