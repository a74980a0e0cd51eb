package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"orderprocessing/internal/entities"
)

var (
	OrdersProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_processed_total",
			Help: "Total number of processed orders by type and final status",
		},
		[]string{"type", "status"},
	)

	OrderProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_processing_duration_seconds",
			Help:    "Duration of a single order processing including persistence",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"type"},
	)

	OrderPersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_persist_failures_total",
			Help: "Total number of swallowed status update failures",
		},
	)

	BatchFetchFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_batch_fetch_failures_total",
			Help: "Total number of batches abandoned because orders could not be fetched",
		},
	)
)

// typeLabel ограничивает кардинальность: тип заказа приходит из данных.
func typeLabel(orderType string) string {
	switch orderType {
	case entities.OrderTypeExport, entities.OrderTypeRemote, entities.OrderTypeInMemory:
		return orderType
	default:
		return "unknown"
	}
}
