package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"sfa-hq/promptbot/pkg/config"
)

// Outcome label values shared by the domain counters.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
	OutcomeUnknown = "unknown"
)

// Collector owns the service's Prometheus registry and every metric
// recorded into it. A nil *Collector, or one built from a disabled config,
// accepts every Record call and does nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	httpMetrics       *HTTPMetrics
	completionMetrics *CompletionMetrics
	toolMetrics       *ToolMetrics
	keepAliveMetrics  *KeepAliveMetrics
}

// NewCollector creates a collector and registers all metrics with registry.
// If registry is nil a fresh one is created, with the Go runtime and
// process collectors attached.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = config.DefaultRequestDurationBuckets
	}

	return &Collector{
		config:            cfg,
		registry:          registry,
		httpMetrics:       NewHTTPMetrics(cfg, registry),
		completionMetrics: NewCompletionMetrics(cfg, registry),
		toolMetrics:       NewToolMetrics(cfg, registry),
		keepAliveMetrics:  NewKeepAliveMetrics(cfg, registry),
	}
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordHTTPRequest records a served HTTP request.
//
// route is the matched mux pattern, or "unmatched" for the 404 fallback,
// which keeps label cardinality bounded by the route table.
func (c *Collector) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if !c.enabled() {
		return
	}
	c.httpMetrics.Record(route, method, strconv.Itoa(status), duration)
}

// RecordCompletion records one call to the completion service.
func (c *Collector) RecordCompletion(outcome string, duration time.Duration) {
	if !c.enabled() {
		return
	}
	c.completionMetrics.Record(outcome, duration)
}

// RecordToolDispatch records one tool dispatch.
func (c *Collector) RecordToolDispatch(tool, outcome string) {
	if !c.enabled() {
		return
	}
	c.toolMetrics.Record(tool, outcome)
}

// RecordKeepAlivePing records one self-ping.
func (c *Collector) RecordKeepAlivePing(outcome string) {
	if !c.enabled() {
		return
	}
	c.keepAliveMetrics.Record(outcome)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Enabled reports whether metrics are being recorded.
func (c *Collector) Enabled() bool {
	return c.enabled()
}

// Path returns the HTTP path the metrics endpoint is served on.
func (c *Collector) Path() string {
	return c.config.Path
}
