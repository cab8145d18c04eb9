// Package metrics defines and registers all custom Prometheus metrics for the
// playground API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "playground"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Labels:
//   - method: "password" or "google"
//   - result: "ok", "exists", "wrong_method", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by auth method and result.",
	},
	[]string{"method", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - method: "password" or "google"
//   - result: "ok", "invalid_credentials", "wrong_method", "not_found", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by auth method and result.",
	},
	[]string{"method", "result"},
)

// SessionVerificationsTotal counts session-gate decisions on protected routes.
// Label:
//   - result: "ok", "missing", "invalid"
var SessionVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_verifications_total",
		Help:      "Total number of session token checks at the gate, by result.",
	},
	[]string{"result"},
)

// ── Code execution metrics ────────────────────────────────────────────────────

// ExecutionsTotal counts code executions forwarded to the runner.
// Labels:
//   - language: the requested language (e.g. "python")
//   - result: "ok", "rejected", "error"
var ExecutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "executions_total",
		Help:      "Total number of code execution requests, by language and result.",
	},
	[]string{"language", "result"},
)

// ExecutionDuration measures end-to-end execution latency, including the
// round trip to the runner.
var ExecutionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "execution_duration_seconds",
		Help:      "Duration of code execution from request to runner verdict.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"language"},
)

// ExecutionCacheTotal counts result-cache lookups.
// Label:
//   - result: "hit" or "miss"
var ExecutionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "execution_cache_total",
		Help:      "Total number of execution cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Audio metrics ─────────────────────────────────────────────────────────────

// TranscriptionsTotal counts audio uploads forwarded to the transcriber.
// Label:
//   - result: "ok" or "error"
var TranscriptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transcriptions_total",
		Help:      "Total number of audio transcription requests, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of auth events waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit trail writes.
// Label:
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of auth events written to the audit trail, by result.",
	},
	[]string{"result"},
)
