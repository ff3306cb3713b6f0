package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(MinimalConfig()); err != nil {
		t.Fatalf("expected default config to be valid, got: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{
			name:   "port too low",
			modify: func(c *Config) { c.Server.Port = 0 },
			field:  "server.port",
		},
		{
			name:   "port too high",
			modify: func(c *Config) { c.Server.Port = 65536 },
			field:  "server.port",
		},
		{
			name:   "base url without scheme",
			modify: func(c *Config) { c.Server.BaseURL = "localhost:5000" },
			field:  "server.base_url",
		},
		{
			name:   "negative read timeout",
			modify: func(c *Config) { c.Server.ReadTimeout = -time.Second },
			field:  "server.read_timeout",
		},
		{
			name:   "oversized headers",
			modify: func(c *Config) { c.Server.MaxHeaderBytes = 20 * 1024 * 1024 },
			field:  "server.max_header_bytes",
		},
		{
			name:   "empty model",
			modify: func(c *Config) { c.OpenAI.Model = " " },
			field:  "openai.model",
		},
		{
			name:   "ftp openai base url",
			modify: func(c *Config) { c.OpenAI.BaseURL = "ftp://api.example.com" },
			field:  "openai.base_url",
		},
		{
			name:   "zero max words",
			modify: func(c *Config) { c.Bot.MaxWords = -1 },
			field:  "bot.max_words",
		},
		{
			name:   "empty demo url",
			modify: func(c *Config) { c.Demo.URL = "" },
			field:  "demo.url",
		},
		{
			name:   "sub-second keepalive",
			modify: func(c *Config) { c.KeepAlive.Interval = 10 * time.Millisecond },
			field:  "keepalive.interval",
		},
		{
			name:   "bad log level",
			modify: func(c *Config) { c.Telemetry.Logging.Level = "trace" },
			field:  "telemetry.logging.level",
		},
		{
			name:   "bad log format",
			modify: func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			field:  "telemetry.logging.format",
		},
		{
			name:   "relative metrics path",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path on root",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path on demo route",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/api" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path on bot route",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/prompt-bot" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path subtree",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/metrics/" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path wildcard",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/{name}" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path not clean",
			modify: func(c *Config) { c.Telemetry.Metrics.Path = "/a/../api" },
			field:  "telemetry.metrics.path",
		},
		{
			name: "bad sampler",
			modify: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Sampler = "sometimes"
			},
			field: "telemetry.tracing.sampler",
		},
		{
			name: "ratio out of range",
			modify: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.SampleRatio = 1.5
			},
			field: "telemetry.tracing.sample_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MinimalConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %q, got %v", tt.field, verr.Errors)
			}
		})
	}
}

func TestValidate_KeepAliveDisabledSkipsChecks(t *testing.T) {
	cfg := NewTestConfig().WithKeepAlive(false, time.Millisecond).Build()
	if err := Validate(cfg); err != nil {
		t.Errorf("expected disabled keepalive to skip validation, got: %v", err)
	}
}

func TestValidate_TracingDisabledSkipsChecks(t *testing.T) {
	cfg := MinimalConfig()
	cfg.Telemetry.Tracing.Sampler = "sometimes"
	if err := Validate(cfg); err != nil {
		t.Errorf("expected disabled tracing to skip validation, got: %v", err)
	}
}

func TestValidate_MissingAPIKeyAllowed(t *testing.T) {
	cfg := MinimalConfig()
	cfg.OpenAI.APIKey = ""
	if err := Validate(cfg); err != nil {
		t.Errorf("expected missing api key to be allowed, got: %v", err)
	}
}

func TestValidationError_Format(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "server.port", Message: "bad"}}}
	if got := single.Error(); got != "configuration validation failed: server.port: bad" {
		t.Errorf("unexpected single error format: %q", got)
	}

	multi := ValidationError{Errors: []FieldError{
		{Field: "server.port", Message: "bad"},
		{Field: "demo.url", Message: "worse"},
	}}
	got := multi.Error()
	if !strings.HasPrefix(got, "configuration validation failed with 2 errors:\n") {
		t.Errorf("unexpected multi error header: %q", got)
	}
	if !strings.Contains(got, "  - demo.url: worse\n") {
		t.Errorf("expected multi error to list demo.url, got %q", got)
	}

	if got := (ValidationError{}).Error(); got != "configuration validation failed" {
		t.Errorf("unexpected empty error format: %q", got)
	}
}
