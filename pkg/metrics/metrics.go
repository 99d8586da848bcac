package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes recorded by GenerationsTotal.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeInferenceFail = "inference_error"
	OutcomeSaveFailed    = "save_failed"
)

// Metrics holds the application's instruments on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal    *prometheus.CounterVec
	InferenceDuration   prometheus.Histogram
	PersistenceFailures prometheus.Counter
	CacheHits           prometheus.Counter
	AuthRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		GenerationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travelstar_generations_total",
			Help: "Itinerary generation requests by outcome.",
		}, []string{"outcome"}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travelstar_inference_duration_seconds",
			Help:    "Latency of inference provider calls.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
		PersistenceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelstar_persistence_failures_total",
			Help: "Generated plans that could not be written to the history store.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelstar_completion_cache_hits_total",
			Help: "Generations answered from the completion cache.",
		}),
		AuthRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travelstar_auth_requests_total",
			Help: "Registration and login attempts by action and result.",
		}, []string{"action", "result"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travelstar_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.GenerationsTotal,
		m.InferenceDuration,
		m.PersistenceFailures,
		m.CacheHits,
		m.AuthRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

func (m *Metrics) ObserveInference(start time.Time) {
	m.InferenceDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
