// Package metrics defines and registers the custom Prometheus metrics of the
// hospital admin API. It is the single source of truth for metric names,
// labels and help strings.
//
// All metrics register with the default registry through promauto, so they are
// exposed by the /metrics handler without any further setup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", "throttled", "bad_request" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginDuration measures how long a login takes, bcrypt included.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login requests from bind to response.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts bearer token checks done by the auth middleware.
// Label:
//   - result: "valid", "invalid", "expired" or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayOperationsTotal counts CRUD operations per entity.
// Labels:
//   - entity: resource name (e.g. "patients")
//   - op: "list", "get", "create", "update" or "delete"
//   - result: "ok", "not_found", "conflict", "invalid" or "error"
var GatewayOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_operations_total",
		Help:      "Total number of entity gateway operations.",
	},
	[]string{"entity", "op", "result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsDroppedTotal counts auth events discarded because a worker channel was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of auth events dropped due to a full audit queue.",
	},
)

// AuditWriteErrorsTotal counts failed audit inserts.
var AuditWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_errors_total",
		Help:      "Total number of auth events that could not be persisted.",
	},
)
