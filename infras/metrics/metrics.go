package metrics

import (
	"net/http"
	"strconv"
	"time"

	"scaffold/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "scaffold"

// Metrics owns a private registry so that several servers (and tests) can
// live in one process without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
	events   *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	constLabels := prometheus.Labels{"app": cfg.App.Name}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "HTTP requests by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_in_flight",
			Help:        "HTTP requests currently being served.",
			ConstLabels: constLabels,
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "events",
			Name:        "consumed_total",
			Help:        "Lifecycle events consumed by topic and action.",
			ConstLabels: constLabels,
		}, []string{"topic", "action"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.inFlight,
		m.events,
	)

	log.Info().Msg("Prometheus metrics registry initialized")

	return m
}

func (m *Metrics) RequestStarted() {
	m.inFlight.Inc()
}

// RequestFinished records one completed request. route is the matched
// route pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) RequestFinished(method, route string, code int, elapsed time.Duration) {
	m.inFlight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) EventConsumed(topic, action string) {
	m.events.WithLabelValues(topic, action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests that gather samples directly.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
