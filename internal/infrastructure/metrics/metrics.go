package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics of the history engine.
// It satisfies usecase.ExportObserver.
type Metrics struct {
	// Export metrics
	Exports         *prometheus.CounterVec
	ExportDuration  *prometheus.HistogramVec
	ExportedRecords prometheus.Histogram

	// Resolution metrics
	OutputsResolved *prometheus.CounterVec
	AmountsRejected prometheus.Counter

	// Cache metrics
	CacheLookups *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Exports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_history_exports_total",
				Help: "Total history builds by kind and status",
			},
			[]string{"kind", "status"},
		),
		ExportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "explorer_history_export_duration_seconds",
				Help:    "Duration of history builds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"kind"},
		),
		ExportedRecords: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "explorer_history_records",
			Help:    "Number of transaction records per successful history build",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		OutputsResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_outputs_resolved_total",
				Help: "Output detail lookups by result",
			},
			[]string{"result"},
		),
		AmountsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "explorer_amounts_rejected_total",
			Help: "Output amounts that were missing or invalid and counted as zero",
		}),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_detail_cache_lookups_total",
				Help: "Output detail cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// OutputResolved records the outcome of a single output detail lookup.
func (m *Metrics) OutputResolved(ok bool) {
	result := "resolved"
	if !ok {
		result = "unresolved"
	}
	m.OutputsResolved.WithLabelValues(result).Inc()
}

// AmountRejected records an amount that contributed zero to its balance.
func (m *Metrics) AmountRejected() {
	m.AmountsRejected.Inc()
}

// ExportFinished records a finished history build.
func (m *Metrics) ExportFinished(kind, status string, duration time.Duration, records int) {
	m.Exports.WithLabelValues(kind, status).Inc()
	m.ExportDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if status == "success" {
		m.ExportedRecords.Observe(float64(records))
	}
}

// CacheHit records an output detail served from cache.
func (m *Metrics) CacheHit() {
	m.CacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss records an output detail fetched from upstream.
func (m *Metrics) CacheMiss() {
	m.CacheLookups.WithLabelValues("miss").Inc()
}
