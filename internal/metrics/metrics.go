// Package metrics registers the Prometheus instrumentation for the
// resolver service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service collectors. All collectors are
// registered on the registry passed to New.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	AddressesProcessed *prometheus.CounterVec
	ConfidenceScore    prometheus.Histogram
	GazetteerLandmarks prometheus.Gauge
	GazetteerReloads   prometheus.Counter
}

// New creates and registers the service metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addresspin",
			Name:      "http_requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "addresspin",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		AddressesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addresspin",
			Name:      "addresses_processed_total",
			Help:      "Addresses resolved, by prediction method.",
		}, []string{"method"}),

		ConfidenceScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "addresspin",
			Name:      "confidence_score",
			Help:      "Distribution of final confidence scores.",
			Buckets:   prometheus.LinearBuckets(0.0, 0.1, 11),
		}),

		GazetteerLandmarks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "addresspin",
			Name:      "gazetteer_landmarks",
			Help:      "Landmarks in the current gazetteer snapshot.",
		}),

		GazetteerReloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "addresspin",
			Name:      "gazetteer_reloads_total",
			Help:      "Successful gazetteer reloads.",
		}),
	}
}

// ObserveResult records the outcome of one resolved address.
func (m *Metrics) ObserveResult(method string, confidence float64) {
	m.AddressesProcessed.WithLabelValues(method).Inc()
	m.ConfidenceScore.Observe(confidence)
}
