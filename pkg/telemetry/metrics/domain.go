package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sfa-hq/promptbot/pkg/config"
)

// CompletionMetrics tracks calls to the chat-completion service.
//
// Metrics:
//   - <ns>_completion_requests_total{outcome}
//   - <ns>_completion_duration_seconds
type CompletionMetrics struct {
	requestsTotal *prometheus.CounterVec
	duration      prometheus.Histogram
}

// NewCompletionMetrics creates and registers completion metrics.
func NewCompletionMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CompletionMetrics {
	m := &CompletionMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "completion_requests_total",
				Help:      "Total number of chat-completion calls by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "completion_duration_seconds",
				Help:      "Latency of chat-completion calls in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
		),
	}

	registry.MustRegister(m.requestsTotal, m.duration)

	return m
}

// Record records one completion call.
func (m *CompletionMetrics) Record(outcome string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.duration.Observe(duration.Seconds())
}

// ToolMetrics tracks tool dispatches.
//
// Metrics:
//   - <ns>_tool_dispatch_total{tool,outcome}
type ToolMetrics struct {
	dispatchTotal *prometheus.CounterVec
}

// NewToolMetrics creates and registers tool metrics.
func NewToolMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ToolMetrics {
	m := &ToolMetrics{
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "tool_dispatch_total",
				Help:      "Total number of tool dispatches by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
	}

	registry.MustRegister(m.dispatchTotal)

	return m
}

// Record records one dispatch.
func (m *ToolMetrics) Record(tool, outcome string) {
	m.dispatchTotal.WithLabelValues(tool, outcome).Inc()
}

// KeepAliveMetrics tracks self-pings.
//
// Metrics:
//   - <ns>_keepalive_pings_total{outcome}
type KeepAliveMetrics struct {
	pingsTotal *prometheus.CounterVec
}

// NewKeepAliveMetrics creates and registers keep-alive metrics.
func NewKeepAliveMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *KeepAliveMetrics {
	m := &KeepAliveMetrics{
		pingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "keepalive_pings_total",
				Help:      "Total number of self-pings by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(m.pingsTotal)

	return m
}

// Record records one ping.
func (m *KeepAliveMetrics) Record(outcome string) {
	m.pingsTotal.WithLabelValues(outcome).Inc()
}
