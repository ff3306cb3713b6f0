package keepalive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"

	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/metrics"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
)

// healthResponse is the body of GET / on a live service.
type healthResponse struct {
	Message string `json:"message"`
}

// Pinger calls GET <base_url>/ on a fixed interval.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
	stop    chan struct{}

	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
}

// NewPinger creates a pinger targeting baseURL.
func NewPinger(baseURL string, cfg config.KeepAliveConfig, logger *slog.Logger, collector *metrics.Collector, tracer *tracing.Tracer) *Pinger {
	if cfg.Interval == 0 {
		cfg.Interval = config.DefaultKeepAliveInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pinger{
		url:      strings.TrimRight(baseURL, "/") + "/",
		interval: cfg.Interval,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger.With("component", "keepalive"),
		metrics:  collector,
		tracer:   tracer,
	}
}

// URL returns the ping target.
func (p *Pinger) URL() string {
	return p.url
}

// Schedule returns the cron spec the pinger runs on.
func (p *Pinger) Schedule() string {
	return "@every " + p.interval.String()
}

// Start schedules the ping. The scheduler stops when ctx is cancelled or
// Stop is called.
func (p *Pinger) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("keep-alive already running")
	}

	p.cron = cron.New()
	_, err := p.cron.AddFunc(p.Schedule(), func() {
		p.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule keep-alive %q: %w", p.Schedule(), err)
	}

	p.cron.Start()
	p.running = true
	stop := make(chan struct{})
	p.stop = stop

	p.logger.Info("keep-alive started",
		"url", p.url,
		"interval", p.interval.String(),
	)

	go func() {
		select {
		case <-ctx.Done():
			p.stopRun(stop)
		case <-stop:
		}
	}()

	return nil
}

// Stop stops the scheduler and waits for an in-flight ping to finish.
func (p *Pinger) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

// stopRun stops the scheduler only if it is still the run that owns stop.
func (p *Pinger) stopRun(stop chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != stop {
		return
	}
	p.stopLocked()
}

func (p *Pinger) stopLocked() {
	if !p.running {
		return
	}

	done := p.cron.Stop()
	<-done.Done()
	close(p.stop)
	p.stop = nil
	p.running = false
	p.logger.Info("keep-alive stopped")
}

// IsRunning reports whether the scheduler is running.
func (p *Pinger) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

// NextRun returns the next scheduled ping time, or nil if nothing is scheduled.
func (p *Pinger) NextRun() *time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil {
		return nil
	}

	entries := p.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}

// Ping calls the health endpoint once and logs the outcome. It reports
// whether the service answered with a 2xx status.
func (p *Pinger) Ping(ctx context.Context) bool {
	ctx, span := p.tracer.Start(ctx, "keepalive.ping")
	span.SetAttributes(attribute.String("http.url", p.url))

	message, err := p.ping(ctx)
	tracing.End(span, err)

	if err != nil {
		p.metrics.RecordKeepAlivePing(metrics.OutcomeError)
		p.logger.ErrorContext(ctx, fmt.Sprintf("Error pinging server: %v", err), "url", p.url)
		return false
	}

	p.metrics.RecordKeepAlivePing(metrics.OutcomeSuccess)
	p.logger.InfoContext(ctx, "Server pinged successfully: "+message, "url", p.url)
	return true
}

func (p *Pinger) ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", err
	}
	tracing.Inject(ctx, req.Header)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	var health healthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return health.Message, nil
}
