package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "funnel"

// Metrics holds the Prometheus collectors shared by the API and the consumer
type Metrics struct {
	HTTPRequests           *prometheus.CounterVec
	HTTPDuration           *prometheus.HistogramVec
	TemplateValidations    *prometheus.CounterVec
	SnapshotsPublished     prometheus.Counter
	ConsumerBatchSnapshots *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		TemplateValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_validations_total",
			Help:      "Template validations by outcome.",
		}, []string{"outcome"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_published_total",
			Help:      "Performance snapshots published to the queue.",
		}),
		ConsumerBatchSnapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumer_batch_snapshots_total",
			Help:      "Snapshots handled by the consumer batch writer by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.TemplateValidations,
		m.SnapshotsPublished,
		m.ConsumerBatchSnapshots,
	)
	return m
}

// RequestServed records one HTTP request. route is the matched route pattern, not the raw path.
func (m *Metrics) RequestServed(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ValidationOutcome records a template validation result
func (m *Metrics) ValidationOutcome(valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.TemplateValidations.WithLabelValues(outcome).Inc()
}

// SnapshotsSent records published snapshots
func (m *Metrics) SnapshotsSent(count int) {
	if m == nil {
		return
	}
	m.SnapshotsPublished.Add(float64(count))
}

// BatchInserted implements consumer.BatchObserver
func (m *Metrics) BatchInserted(count int) {
	if m == nil {
		return
	}
	m.ConsumerBatchSnapshots.WithLabelValues("inserted").Add(float64(count))
}

// BatchFailed implements consumer.BatchObserver
func (m *Metrics) BatchFailed(count int) {
	if m == nil {
		return
	}
	m.ConsumerBatchSnapshots.WithLabelValues("failed").Add(float64(count))
}
