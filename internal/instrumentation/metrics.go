package instrumentation

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketing_effectiveness"

// Batch insert outcomes
const (
	BatchSuccess = "success"
	BatchFailure = "failure"
	BatchPartial = "partial"
)

// Touchpoint publish outcomes
const (
	PublishAccepted = "accepted"
	PublishRejected = "rejected"
	PublishFailed   = "failed"
)

// Metrics owns a Prometheus registry and the collectors registered on it.
// All methods are safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	registry             *prometheus.Registry
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	touchpointsPublished *prometheus.CounterVec
	attributionRuns      *prometheus.CounterVec
	significanceVerdicts *prometheus.CounterVec
	batchInserts         *prometheus.CounterVec
	batchSize            prometheus.Histogram
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		touchpointsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "touchpoints_published_total",
			Help:      "Touchpoints handed to the queue by outcome.",
		}, []string{"outcome"}),
		attributionRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attribution_runs_total",
			Help:      "Attribution computations by requested model.",
		}, []string{"model"}),
		significanceVerdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "significance_verdicts_total",
			Help:      "Significance tests by verdict.",
		}, []string{"verdict"}),
		batchInserts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumer_batch_inserts_total",
			Help:      "Consumer batch inserts by outcome.",
		}, []string{"outcome"}),
		batchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "consumer_batch_size",
			Help:      "Touchpoints per consumer batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		}),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// TouchpointPublished counts a touchpoint by publish outcome
func (m *Metrics) TouchpointPublished(outcome string) {
	if m == nil {
		return
	}
	m.touchpointsPublished.WithLabelValues(outcome).Inc()
}

// AttributionRun counts an attribution computation
func (m *Metrics) AttributionRun(model string) {
	if m == nil {
		return
	}
	m.attributionRuns.WithLabelValues(model).Inc()
}

// SignificanceVerdict counts a significance test result
func (m *Metrics) SignificanceVerdict(significant bool) {
	if m == nil {
		return
	}
	verdict := "not_significant"
	if significant {
		verdict = "significant"
	}
	m.significanceVerdicts.WithLabelValues(verdict).Inc()
}

// BatchInsert records a consumer batch insert
func (m *Metrics) BatchInsert(outcome string, size int) {
	if m == nil {
		return
	}
	m.batchInserts.WithLabelValues(outcome).Inc()
	m.batchSize.Observe(float64(size))
}
