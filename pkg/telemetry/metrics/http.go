package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sfa-hq/promptbot/pkg/config"
)

// HTTPMetrics tracks served HTTP requests.
//
// Metrics:
//   - <ns>_http_requests_total{route,method,status}
//   - <ns>_http_request_duration_seconds{route,method}
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics.
func NewHTTPMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"route", "method"},
		),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration)

	return m
}

// Record records one served request.
func (m *HTTPMetrics) Record(route, method, status string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}
