// Package metrics exposes the Prometheus collectors of the API. The default
// registry already carries the Go runtime and process collectors.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"code", "method", "path"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Number of HTTP requests being served.",
	})

	cartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diet_cart_mutations_total",
		Help: "Total number of cart mutations by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// Cart mutation operations.
const (
	CartAddMeal       = "add_meal"
	CartRemoveMeal    = "remove_meal"
	CartAddProduct    = "add_product"
	CartRemoveProduct = "remove_product"
	CartReset         = "reset"
)

func RecordCartMutation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	cartMutations.WithLabelValues(operation, outcome).Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware records count, latency and concurrency per route. It must wrap
// the mux so the matched pattern is known once the handler returns.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		route := routeLabel(r)
		requestsTotal.WithLabelValues(strconv.Itoa(sw.status), r.Method, route).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel is the path half of the mux pattern, keeping label cardinality
// bounded by the route table.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedRoute
	}

	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}

	return r.Pattern
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
