package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RunsTotal          prometheus.Counter
	RunDuration        prometheus.Histogram
	EntriesForecast    prometheus.Gauge
	CorrectionsApplied prometheus.Counter
	DuplicatesFlagged  prometheus.Counter
	SkippedResources   prometheus.Counter
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_runs_total",
			Help:      "The total number of completed forecast runs",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forecast_run_duration_seconds",
			Help:      "Time taken for one full reconciliation pass",
			Buckets:   prometheus.DefBuckets,
		}),
		EntriesForecast: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "forecast_entries",
			Help:      "Number of forecast entries produced by the last run",
		}),
		CorrectionsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_corrections_total",
			Help:      "The total number of dates corrected from the assignment calendar",
		}),
		DuplicatesFlagged: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_entries_total",
			Help:      "The total number of entries flagged as duplicate resource assignments",
		}),
		SkippedResources: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_resources_total",
			Help:      "The total number of resources skipped during grid parsing",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
