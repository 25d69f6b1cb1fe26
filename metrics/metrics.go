package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides operational visibility into case mutations, including the
// audit and failed-reassignment writes that are never surfaced to callers.
type Metrics struct {
	CaseMutations          *prometheus.CounterVec
	ReassignmentsBlocked   *prometheus.CounterVec
	AuditWriteFailures     prometheus.Counter
	FailedLogWriteFailures prometheus.Counter
	StaleUpdatesRejected   prometheus.Counter
	UpdateCaseDuration     prometheus.Histogram
}

// New creates a Metrics instance registered on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CaseMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetracker_case_mutations_total",
			Help: "Committed case mutations by audit action",
		}, []string{"action"}),
		ReassignmentsBlocked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetracker_reassignments_blocked_total",
			Help: "Rejected reassignment attempts by rule",
		}, []string{"rule"}),
		AuditWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "casetracker_audit_write_failures_total",
			Help: "Audit entries that could not be written after a committed case mutation",
		}),
		FailedLogWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "casetracker_failed_reassignment_log_write_failures_total",
			Help: "Failed reassignment log entries that could not be written",
		}),
		StaleUpdatesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "casetracker_stale_updates_rejected_total",
			Help: "Case updates rejected because the case changed after it was read",
		}),
		UpdateCaseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "casetracker_update_case_duration_seconds",
			Help:    "Duration of case update requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCaseMutation records a committed mutation classified as action.
func (m *Metrics) IncrementCaseMutation(action string) {
	m.CaseMutations.WithLabelValues(action).Inc()
}

// IncrementReassignmentBlocked records a rejected reassignment for the rule that failed.
func (m *Metrics) IncrementReassignmentBlocked(rule string) {
	m.ReassignmentsBlocked.WithLabelValues(rule).Inc()
}

// IncrementAuditWriteFailure records a swallowed audit write error.
func (m *Metrics) IncrementAuditWriteFailure() {
	m.AuditWriteFailures.Inc()
}

// IncrementFailedLogWriteFailure records a swallowed failed-reassignment log write error.
func (m *Metrics) IncrementFailedLogWriteFailure() {
	m.FailedLogWriteFailures.Inc()
}

// IncrementStaleUpdate records an optimistic concurrency rejection.
func (m *Metrics) IncrementStaleUpdate() {
	m.StaleUpdatesRejected.Inc()
}

// ObserveUpdateCase records the duration of an update request.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUpdateCase(start time.Time) {
	m.UpdateCaseDuration.Observe(time.Since(start).Seconds())
}
