package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementCaseMutation("Updated")
	m.IncrementCaseMutation("Updated")
	m.IncrementReassignmentBlocked("organizational_unit")
	m.IncrementAuditWriteFailure()
	m.IncrementFailedLogWriteFailure()
	m.IncrementStaleUpdate()
	m.ObserveUpdateCase(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CaseMutations.WithLabelValues("Updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReassignmentsBlocked.WithLabelValues("organizational_unit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditWriteFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FailedLogWriteFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StaleUpdatesRejected))
}

func TestNewOnSeparateRegistries(t *testing.T) {
	// Each registry gets its own collectors, so building twice must not panic.
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
