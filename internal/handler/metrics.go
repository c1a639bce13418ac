package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "kafka_consumer",
			Name:      "carrier_updates_processed_total",
			Help:      "Total number of successfully applied carrier updates",
		},
	)

	updatesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "kafka_consumer",
			Name:      "carrier_updates_failed_total",
			Help:      "Total number of failed carrier update attempts",
		},
	)

	updatesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "kafka_consumer",
			Name:      "carrier_updates_dlq_total",
			Help:      "Total number of carrier updates written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	updateProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront_orders",
			Subsystem: "kafka_consumer",
			Name:      "carrier_update_processing_duration_seconds",
			Help:      "Histogram of carrier update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	shipmentWebhooks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "shipment",
			Name:      "webhooks_total",
			Help:      "Carrier shipment updates by outcome and resulting order status",
		},
		[]string{"outcome", "status"},
	)

	backfillRepairs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "backfill",
			Name:      "repairs_total",
			Help:      "Delivery date repairs by mode and result",
		},
		[]string{"mode", "result"},
	)

	paymentEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "payment",
			Name:      "webhook_events_total",
			Help:      "Payment gateway webhook events by normalized type and result",
		},
		[]string{"event", "result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		updatesProcessed,
		updatesFailed,
		updatesDLQ,
		commitErrors,
		updateProcessingDuration,

		shipmentWebhooks,
		backfillRepairs,
		paymentEvents,
	)
}

func observeShipment(outcome, status string) {
	if status == "" {
		status = "unknown"
	}
	shipmentWebhooks.WithLabelValues(outcome, status).Inc()
}
