// Package metrics exports Prometheus metrics for catalog processing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
)

const namespace = "catalog"

// Document outcomes reported by ObserveDocument.
const (
	StatusOK        = "ok"
	StatusNotFound  = "not_found"
	StatusMalformed = "malformed"
	StatusCancelled = "cancelled"
	StatusError     = "error"
)

// Metrics holds the catalog collectors on a registry owned by the instance,
// so several instances can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	RecordsTotal       *prometheus.CounterVec
	DocumentsTotal     *prometheus.CounterVec
	ProcessingDuration prometheus.Histogram
}

// Option configures Metrics.
type Option func(*options)

type options struct {
	runtime bool
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(o *options) { o.runtime = true }
}

func New(opts ...Option) *Metrics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	if o.runtime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		RecordsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Catalog records classified, by outcome and rejection reason",
		}, []string{"outcome", "reason"}),
		DocumentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Catalog documents processed, by status",
		}, []string{"status"}),
		ProcessingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Time to extract and validate a whole catalog document",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
	}
}

// ObserveRecord implements catalog.Observer.
func (m *Metrics) ObserveRecord(res catalog.Result) {
	if rej, ok := res.Rejection(); ok {
		m.RecordsTotal.WithLabelValues("invalid", rej.Reason.String()).Inc()
		return
	}
	m.RecordsTotal.WithLabelValues("valid", "").Inc()
}

// ObserveDocument records the outcome and duration of one document.
func (m *Metrics) ObserveDocument(status string, d time.Duration) {
	m.DocumentsTotal.WithLabelValues(status).Inc()
	m.ProcessingDuration.Observe(d.Seconds())
}

// Registry exposes the underlying registry, for example to add collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
