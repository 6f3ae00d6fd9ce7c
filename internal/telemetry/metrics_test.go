package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ValidationOutcome(true)
	m.ValidationOutcome(false)
	m.ValidationOutcome(false)
	m.SnapshotsSent(4)
	m.BatchInserted(3)
	m.BatchFailed(2)
	m.RequestServed("GET", "/funnel-templates/:id", 404, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TemplateValidations.WithLabelValues("valid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TemplateValidations.WithLabelValues("invalid")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.SnapshotsPublished))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ConsumerBatchSnapshots.WithLabelValues("inserted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConsumerBatchSnapshots.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/funnel-templates/:id", "404")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ValidationOutcome(true)
		m.SnapshotsSent(1)
		m.BatchInserted(1)
		m.BatchFailed(1)
		m.RequestServed("GET", "/health", 200, time.Millisecond)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
