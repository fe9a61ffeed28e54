package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Ledger
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Total ledger entries appended",
		},
		[]string{"expense_type"}, // credit|debit
	)
	InsufficientCredits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_insufficient_credits_total",
			Help: "Total charges rejected for insufficient balance",
		},
	)

	// Campaigns
	CampaignsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_created_total",
			Help: "Total campaigns created",
		},
	)
	SuperboostsActivated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_superboosts_total",
			Help: "Total superboost activations",
		},
	)

	// Audit worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(HTTPLatency)
	prometheus.MustRegister(TransactionsTotal)
	prometheus.MustRegister(InsufficientCredits)
	prometheus.MustRegister(CampaignsCreated)
	prometheus.MustRegister(SuperboostsActivated)
	prometheus.MustRegister(WorkerQueueDepth)
}
