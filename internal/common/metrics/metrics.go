// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	CopyGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copy_generation_total",
			Help: "Total number of copy generation attempts by mode and outcome",
		},
		[]string{"mode", "status"},
	)

	BriefingSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_submissions_total",
			Help: "Total number of public briefing submissions by outcome",
		},
		[]string{"status"},
	)

	ContractPaymentFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contract_payment_fallback_total",
			Help: "Times an unrecognized payment type fell back to the entry+balance clause",
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits by cache name",
		},
		[]string{"cache"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses by cache name",
		},
		[]string{"cache"},
	)

	SearchFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_search_fallbacks_total",
			Help: "Times library search fell back from Elasticsearch to SQL",
		},
	)
)
