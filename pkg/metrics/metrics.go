// Package metrics exposes Prometheus counters for the HTTP surface and the
// storefront domain (orders, revenue, carts, sessions).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// OrdersPlaced counts completed checkouts.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Orders successfully placed.",
	})

	// Revenue accumulates order totals.
	Revenue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_revenue_total",
		Help: "Sum of order totals, tax and shipping included.",
	})

	// PaymentDuration observes simulated gateway latency.
	PaymentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_payment_duration_seconds",
		Help:    "Time spent in the payment gateway per checkout.",
		Buckets: []float64{0.5, 1, 2, 3, 5, 10},
	})

	// CartAdds counts add-to-cart operations across all sessions.
	CartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_adds_total",
		Help: "Items added to carts.",
	})

	// ActiveSessions tracks live session store containers.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_active_sessions",
		Help: "Session store containers currently held in memory.",
	})
)

// Handler serves the /metrics scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency, labelled by the chi route
// pattern so path parameters do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
