package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Common labels for all metrics
	commonLabels = []string{"operation"}

	// Latency buckets in milliseconds; completions routinely take seconds
	latencyBuckets = []float64{
		25, 50, 100, // tokenize/detokenize territory
		250, 500, 1000, // embeddings, short completions
		2500, 5000, 10000, // normal completions
		30000, 60000, 120000, // long generations / timeouts
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alephalpha_client_requests_total",
			Help: "Total number of API requests issued by the client",
		},
		append(commonLabels, "status"),
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alephalpha_client_latency_ms",
			Help:    "API request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		commonLabels,
	)

	RequestRetries = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alephalpha_client_retries_total",
			Help: "Total number of retried API requests",
		},
		commonLabels,
	)
)

// ObserveRequest records one completed API call. status is the HTTP status
// code, or 0 when the request never produced a response.
func ObserveRequest(operation string, status int, elapsed time.Duration) {
	RequestTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	RequestLatency.WithLabelValues(operation).Observe(float64(elapsed.Milliseconds()))
}

// ObserveRetry records a retried attempt for an operation.
func ObserveRetry(operation string) {
	RequestRetries.WithLabelValues(operation).Inc()
}

// Registry exposes the client registry so callers can mount it on their
// own /metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
