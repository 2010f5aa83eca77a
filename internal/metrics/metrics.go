package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invaders_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	ProcedureCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_procedure_calls_total",
		Help: "Total number of RPC procedure calls by path and result code.",
	},
		[]string{"path", "code"},
	)

	ProcedureDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invaders_procedure_duration_seconds",
		Help:    "Latency of RPC procedure calls.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"path"},
	)

	ReadFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_read_fallback_total",
		Help: "Reads answered with an empty or default value because the store failed.",
	},
		[]string{"entity"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_http_requests_total",
		Help: "Total number of HTTP requests by transport and status.",
	},
		[]string{"transport", "status"},
	)

	OutboxPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_outbox_published_total",
		Help: "Outbox tasks handed to the producer, by outcome.",
	},
		[]string{"outcome"},
	)

	AuditPendingEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "invaders_audit_pending_entries",
		Help: "Audit entries accepted but not yet written.",
	})
)
