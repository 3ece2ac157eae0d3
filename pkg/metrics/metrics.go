// Package metrics exposes Prometheus collectors and the metrics listener.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestDuration observes request latency per method/path/status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
		[]string{"method", "path", "status"},
	)

	// DashboardSectionFailures counts degraded dashboard sections.
	DashboardSectionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_section_failures_total",
			Help: "Manager dashboard sections replaced by defaults",
		},
		[]string{"section"},
	)

	// InviteEmailsPublished counts invite email events handed to the broker.
	InviteEmailsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invite_emails_published_total",
			Help: "Invite email events published, by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveHTTPRequest records one request observation.
func ObserveHTTPRequest(method, path, status string, dur time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).
		Observe(float64(dur.Microseconds()) / 1000.0)
}

// Serve runs the /metrics listener on its own address.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
