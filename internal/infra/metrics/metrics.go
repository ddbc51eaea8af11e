// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultNamespace = "addressbook"

// Metrics holds Prometheus metrics collectors and the registry they live in
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	SearchCandidates prometheus.Histogram
	SearchMatches    prometheus.Histogram
}

// Params holds dependencies for Metrics, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the collectors on a dedicated registry.
// It returns nil when metrics are disabled.
func New(params Params) *Metrics {
	cfg := params.Config.Metrics
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	return NewWithNamespace(cfg.Namespace)
}

// NewWithNamespace creates and registers every collector under namespace
func NewWithNamespace(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		SearchCandidates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_candidates",
				Help:      "Number of stored addresses scanned by one proximity search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		SearchMatches: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_matches",
				Help:      "Number of addresses returned by one proximity search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.RequestsInFlight,
		m.SearchCandidates,
		m.SearchMatches,
	)

	return m
}

// Handler returns the Prometheus exposition handler for the dedicated registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Gatherer(), promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer returns the dedicated registry as a prometheus.Gatherer
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveSearch implements service.SearchRecorder
func (m *Metrics) ObserveSearch(candidates, matches int) {
	m.SearchCandidates.Observe(float64(candidates))
	m.SearchMatches.Observe(float64(matches))
}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(int, int) {}

// NewSearchRecorder adapts the optional metrics into a search recorder
func NewSearchRecorder(m *Metrics) service.SearchRecorder {
	if m == nil {
		return noopRecorder{}
	}

	return m
}
