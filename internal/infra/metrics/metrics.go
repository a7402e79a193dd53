package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trainer",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "trainer",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	applicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trainer",
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Applications entering a status.",
		},
		[]string{"status"},
	)

	notificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "trainer",
			Subsystem: "notifications",
			Name:      "failures_total",
			Help:      "Status-change notifications that could not be delivered on first attempt.",
		},
	)

	notificationRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trainer",
			Subsystem: "notifications",
			Name:      "retries_total",
			Help:      "Redelivery attempts by outcome.",
		},
		[]string{"outcome"},
	)

	broadcastRecipients = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "trainer",
			Subsystem: "messages",
			Name:      "broadcast_recipients_total",
			Help:      "Message copies written by broadcasts and breach notices.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		applicationTransitions,
		notificationFailures,
		notificationRetries,
		broadcastRecipients,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func ApplicationTransition(status string) {
	applicationTransitions.WithLabelValues(status).Inc()
}

func NotificationFailed() { notificationFailures.Inc() }

func NotificationRetried(outcome string) {
	notificationRetries.WithLabelValues(outcome).Inc()
}

func BroadcastRecipients(n int) {
	broadcastRecipients.Add(float64(n))
}
