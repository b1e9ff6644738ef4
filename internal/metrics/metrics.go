// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsSubmitted counts created bookings by initial status
	// ("Pending" for teacher requests, "Approved" for admin overrides).
	BookingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labbook_bookings_submitted_total",
		Help: "Bookings submitted, labeled by initial status.",
	}, []string{"status"})

	// BookingsDecided counts admin decisions by resulting status.
	BookingsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labbook_bookings_decided_total",
		Help: "Admin booking decisions, labeled by resulting status.",
	}, []string{"status"})

	// AICalls counts collaborator calls by kind (analyze|generate) and
	// outcome (ok|error|disabled).
	AICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labbook_ai_calls_total",
		Help: "Calls to the AI collaborator, labeled by kind and outcome.",
	}, []string{"kind", "outcome"})

	// Exports counts schedule downloads by format (csv|xlsx|print).
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labbook_schedule_exports_total",
		Help: "Schedule exports, labeled by format.",
	}, []string{"format"})
)
