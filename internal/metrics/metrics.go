// Package metrics holds the Prometheus collectors for the client layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the client-layer Prometheus collectors.
	Registry = prometheus.NewRegistry()

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "client_layer",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight outbound HTTP requests.",
		},
	)

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "client_layer",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of outbound HTTP requests.",
		},
		[]string{"method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "client_layer",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method"},
	)

	fixtureOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "client_layer",
			Subsystem: "fixture",
			Name:      "operations_total",
			Help:      "Total number of fixture-backend operations served.",
		},
		[]string{"resource", "outcome"},
	)
)

func init() {
	Registry.MustRegister(requestsInFlight, requestsTotal, requestDuration, fixtureOps)
}

// ObserveRequest records one outbound request.
func ObserveRequest(method string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RequestStarted marks an outbound request in flight; call the returned
// func when it completes.
func RequestStarted() func() {
	requestsInFlight.Inc()
	return requestsInFlight.Dec
}

// ObserveFixtureOp records one fixture-backend operation.
func ObserveFixtureOp(resource, outcome string) {
	fixtureOps.WithLabelValues(resource, outcome).Inc()
}

// Handler exposes the registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
