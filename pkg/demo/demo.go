// Package demo calls a fixed external endpoint to show an outbound request
// from a route handler.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
)

// UpstreamError is returned when the demo endpoint cannot be reached or
// answers with a non-2xx status.
type UpstreamError struct {
	// URL is the endpoint that was called.
	URL string

	// StatusCode is the HTTP status code (0 if no response was received).
	StatusCode int

	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("demo call to %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("demo call to %s failed: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// Client performs the demo call.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     *tracing.Tracer
}

// NewClient creates a demo client for cfg.URL. A zero timeout means the
// call is bounded only by the request context.
func NewClient(cfg config.DemoConfig, logger *slog.Logger, tracer *tracing.Tracer) *Client {
	if cfg.URL == "" {
		cfg.URL = config.DefaultDemoURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		tracer:     tracer,
	}
}

// URL returns the endpoint the client calls.
func (c *Client) URL() string {
	return c.url
}

// Call issues GET against the demo endpoint and returns its status code.
func (c *Client) Call(ctx context.Context) (status int, err error) {
	ctx, span := c.tracer.Start(ctx, "demo.call")
	span.SetAttributes(attribute.String("http.url", c.url))
	defer func() { tracing.End(span, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, &UpstreamError{URL: c.url, Cause: err}
	}
	tracing.Inject(ctx, req.Header)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "demo call failed", "url", c.url, "error", err)
		return 0, &UpstreamError{URL: c.url, Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "demo call completed",
		"url", c.url,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &UpstreamError{URL: c.url, StatusCode: resp.StatusCode}
	}

	return resp.StatusCode, nil
}
