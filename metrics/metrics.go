// Package metrics exposes prometheus instrumentation for the transactional
// core. Counters are labeled by outcome so dashboards can separate business
// rejections from persistence failures.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckoutAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "checkout_attempts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})

	CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Name:      "checkout_duration_seconds",
		Help:      "Wall time of checkout transactions.",
		Buckets:   prometheus.DefBuckets,
	})

	LinesFulfilled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "order_lines_fulfilled_total",
		Help:      "Order lines transitioned to fulfilled.",
	})

	OrdersFulfilled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "orders_fulfilled_total",
		Help:      "Orders whose every line is fulfilled.",
	})
)

func init() {
	prometheus.MustRegister(CheckoutAttempts, CheckoutDuration, LinesFulfilled, OrdersFulfilled)
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
