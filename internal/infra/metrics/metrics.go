// Package metrics exposes Prometheus counters for the event pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsPublished counts product events leaving the publisher, labeled
	// by event type and outcome.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalado_product_events_published_total",
		Help: "Product change events published, by event type and status.",
	}, []string{"event_type", "status"})

	// EventsConsumed counts push deliveries handled by the search worker,
	// labeled by outcome: applied, ignored or failed.
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalado_product_events_consumed_total",
		Help: "Product change events consumed by the search worker, by status.",
	}, []string{"status"})

	// ReconciledProducts records how many products the last startup
	// reconciliation pushed into the index.
	ReconciledProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kalado_reconciled_products",
		Help: "Products indexed by the most recent startup reconciliation.",
	})

	// IndexedDocuments tracks the current size of the search index.
	IndexedDocuments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kalado_indexed_documents",
		Help: "Documents currently held by the search index.",
	})
)
