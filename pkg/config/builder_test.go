package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	cfg := Default()
	cfg.OpenAI.APIKey = "test-key"
	return &ConfigBuilder{cfg: *cfg}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithPort sets the server port.
func (b *ConfigBuilder) WithPort(port int) *ConfigBuilder {
	b.cfg.Server.Port = port
	return b
}

// WithBaseURL sets the server base URL.
func (b *ConfigBuilder) WithBaseURL(url string) *ConfigBuilder {
	b.cfg.Server.BaseURL = url
	return b
}

// WithReadTimeout sets the server read timeout.
func (b *ConfigBuilder) WithReadTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = d
	return b
}

// WithModel sets the completion model.
func (b *ConfigBuilder) WithModel(model string) *ConfigBuilder {
	b.cfg.OpenAI.Model = model
	return b
}

// WithKeepAlive toggles the self-ping and sets its interval.
func (b *ConfigBuilder) WithKeepAlive(enabled bool, interval time.Duration) *ConfigBuilder {
	b.cfg.KeepAlive.Enabled = enabled
	b.cfg.KeepAlive.Interval = interval
	return b
}

// WithLogLevel sets the logging level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Level = level
	return b
}

// WithTracing enables tracing with the given sampler.
func (b *ConfigBuilder) WithTracing(sampler string, ratio float64) *ConfigBuilder {
	b.cfg.Telemetry.Tracing.Enabled = true
	b.cfg.Telemetry.Tracing.Sampler = sampler
	b.cfg.Telemetry.Tracing.SampleRatio = ratio
	return b
}

// MinimalConfig returns the smallest valid configuration.
func MinimalConfig() *Config {
	return Default()
}
