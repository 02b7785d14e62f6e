package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the client's collectors. It is separate from the default
// registry so an embedding application decides whether to expose it.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	APIRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_api_requests_total",
			Help: "Backend API calls by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_api_request_duration_seconds",
			Help:    "Backend API call latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	StaleResponsesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_stale_responses_total",
			Help: "List responses discarded because a newer fetch was dispatched",
		},
		[]string{"view"},
	)
)

// RecordAPICall records one attempt. status is 0 for transport failures.
func RecordAPICall(method, route string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APIRequestsTotal.WithLabelValues(method, route, label).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordStaleResponse(view string) {
	StaleResponsesTotal.WithLabelValues(view).Inc()
}
