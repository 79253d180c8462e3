// Package metrics defines Prometheus metrics for trade-appraiser.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ta"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the API rate limiter.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Appraisal metrics.
var (
	AppraisalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appraisals_total",
		Help:      "Total number of completed appraisals.",
	})

	AppraisalErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appraisal_errors_total",
		Help:      "Total number of appraisals that failed.",
	})

	AppraisalDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "appraisal_duration_seconds",
		Help:      "Duration of a single appraisal including persistence.",
		Buckets:   prometheus.DefBuckets,
	})

	ExtractionStrategyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_strategy_total",
		Help:      "Issue tag extractions by the rule that matched.",
	}, []string{"strategy"})

	ReconCost = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recon_cost_dollars",
		Help:      "Distribution of estimated total repair cost per appraisal.",
		Buckets:   []float64{0, 250, 500, 1000, 1500, 2500, 4000, 6000},
	})

	CompetitivePositionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "competitive_position_total",
		Help:      "Recommended offers by competitive position against KBB.",
	}, []string{"position"})
)

// Retention metrics.
var (
	RetentionDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_deleted_total",
		Help:      "Total number of appraisals pruned by retention.",
	})

	RetentionLastRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "retention_last_run_timestamp",
		Help:      "Unix timestamp of the last successful retention run.",
	})
)
