// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparator_comparisons_total",
			Help: "Total number of college comparisons served",
		},
		[]string{"personalized"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparator_searches_total",
			Help: "Total number of college lookups by outcome",
		},
		[]string{"outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "comparator_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"endpoint"},
	)

	CatalogReloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comparator_catalog_reloads_total",
			Help: "Total number of catalog reloads",
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "comparator_catalog_size",
			Help: "Number of colleges in the loaded catalog",
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparator_cache_requests_total",
			Help: "Comparison cache lookups by result",
		},
		[]string{"result"},
	)
)
