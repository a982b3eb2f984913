package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Transaction metrics
	TransactionsCreated  *prometheus.CounterVec
	TransactionsReplaced prometheus.Counter
	TransactionsDeleted  prometheus.Counter
	TransactionAmountUSD prometheus.Histogram

	// FX metrics
	FxFetches     *prometheus.CounterVec
	FxFetchErrors prometheus.Counter

	// Settings metrics
	SettingsUpdates prometheus.Counter

	// Database metrics
	DBQueries *prometheus.CounterVec
	DBErrors  *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		// Transaction metrics
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_transactions_created_total",
				Help: "Total number of transactions created",
			},
			[]string{"kind", "currency"},
		),
		TransactionsReplaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ladrillo_transactions_replaced_total",
			Help: "Total number of transactions replaced",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ladrillo_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionAmountUSD: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ladrillo_transaction_amount_usd",
			Help:    "Recorded transaction amounts in USD equivalent",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		}),

		// FX metrics
		FxFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_fx_fetches_total",
				Help: "Total FX snapshot fetches by source",
			},
			[]string{"source"},
		),
		FxFetchErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ladrillo_fx_fetch_errors_total",
			Help: "Total FX provider fetch errors",
		}),

		// Settings metrics
		SettingsUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ladrillo_settings_updates_total",
			Help: "Total settings updates",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ladrillo_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
