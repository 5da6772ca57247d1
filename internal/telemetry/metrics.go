package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionsTotal counts determined actions by name, NoAction included.
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_actions_total",
		Help: "Actions determined for extension calls.",
	}, []string{"action"})

	// ReconcileTotal counts reconciliation outcomes: updated, unchanged or error.
	ReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_reconcile_total",
		Help: "Status reconciliation outcomes.",
	}, []string{"outcome"})

	WebhooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_webhooks_total",
		Help: "Webhook notifications by result.",
	}, []string{"result"})

	PSPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "connector_psp_request_duration_seconds",
		Help:    "Latency of PSP API calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

const (
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"

	ResultProcessed = "processed"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)
