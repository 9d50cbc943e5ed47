package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "biller_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "biller_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	InvoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biller_invoices_generated_total",
		Help: "Invoices generated since process start.",
	})

	InvoicesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biller_invoices_deleted_total",
		Help: "Invoices soft-deleted since process start.",
	})

	InvoicesRestored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biller_invoices_restored_total",
		Help: "Soft-deleted invoices restored since process start.",
	})

	DocumentsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "biller_documents_rendered_total",
		Help: "Generated documents by kind and format.",
	}, []string{"kind", "format"})

	CloudSyncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "biller_cloud_sync_failures_total",
		Help: "Cloud uploads that failed and were skipped.",
	})
)
