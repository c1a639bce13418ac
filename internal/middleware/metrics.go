package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Surfaces group routes by who calls them.
const (
	SurfaceCarrier  = "carrier"
	SurfacePayments = "payments"
	SurfaceAdmin    = "admin"
	SurfaceSystem   = "system"
)

var surfacePrefixes = []struct {
	prefix  string
	surface string
}{
	{"/api/webhooks/", SurfaceCarrier},
	{"/api/payments/", SurfacePayments},
	{"/api/admin/", SurfaceAdmin},
}

var (
	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "storefront_orders",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests by caller surface.",
	}, []string{"surface"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"surface", "method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront_orders",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
	}, []string{"surface", "method", "route"})

	// вебхуки, отбитые до сервиса: неверный токен или подпись
	httpRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "http",
		Name:      "rejected_requests_total",
		Help:      "Requests answered with 401 or 403 by caller surface.",
	}, []string{"surface", "status"})
)

// Surface maps a request path onto the caller surface label.
func Surface(path string) string {
	for _, p := range surfacePrefixes {
		if strings.HasPrefix(path, p.prefix) {
			return p.surface
		}
	}
	return SurfaceSystem
}

// Metrics records request counts and latencies by surface and chi route
// pattern, so ids in the path do not blow up label cardinality. Carrier calls
// can take up to the carrier timeout, hence the long histogram tail.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		surface := Surface(r.URL.Path)
		inFlight := httpInFlight.WithLabelValues(surface)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := strconv.Itoa(rw.status)

		httpRequestsTotal.WithLabelValues(surface, r.Method, route, status).Inc()
		httpRequestDuration.WithLabelValues(surface, r.Method, route).Observe(time.Since(start).Seconds())
		if rw.status == http.StatusUnauthorized || rw.status == http.StatusForbidden {
			httpRejectedTotal.WithLabelValues(surface, status).Inc()
		}
	})
}
