package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure for the prompt bot service.
// It is read once at process start and treated as immutable afterwards.
type Config struct {
	// Server contains HTTP server configuration including port, base URL,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// OpenAI contains configuration for the chat-completion upstream.
	OpenAI OpenAIConfig `yaml:"openai"`

	// Bot contains configuration for prompt validation and response assembly.
	Bot BotConfig `yaml:"bot"`

	// Demo contains configuration for the demo outbound API call.
	Demo DemoConfig `yaml:"demo"`

	// KeepAlive contains configuration for the periodic self-ping.
	KeepAlive KeepAliveConfig `yaml:"keepalive"`

	// Telemetry contains configuration for logging, metrics, and tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// Host is the interface to bind. Empty binds all interfaces.
	// Default: ""
	Host string `yaml:"host"`

	// Port is the TCP port to listen on.
	// Environment: PORT
	// Default: 5000
	Port int `yaml:"port"`

	// BaseURL is the externally reachable URL of this service. It is used
	// as the self-ping target.
	// Environment: BASE_URL
	// Default: "http://localhost:5000"
	BaseURL string `yaml:"base_url"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. Zero means no timeout, which lets slow completions finish.
	// Default: 0
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// ListenAddress returns the host:port pair the server binds to.
func (s ServerConfig) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are added.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins. ["*"] allows all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	// Default: ["GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed request headers.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders is a list of headers exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the preflight cache duration in seconds.
	// Default: 0 (header omitted)
	MaxAge int `yaml:"max_age"`
}

// OpenAIConfig contains configuration for the chat-completion service.
type OpenAIConfig struct {
	// APIKey authenticates against the completion service.
	// Environment: OPEN_AI_KEY, OPENAI_API_KEY
	APIKey string `yaml:"api_key"`

	// BaseURL is the API root of the completion service.
	// Default: "https://api.openai.com/v1/"
	BaseURL string `yaml:"base_url"`

	// Model is the chat model to request.
	// Default: "gpt-4o-mini"
	Model string `yaml:"model"`

	// Timeout bounds a single completion call. Zero leaves the HTTP
	// client's default in place.
	// Default: 0
	Timeout time.Duration `yaml:"timeout"`
}

// BotConfig contains configuration for question handling.
type BotConfig struct {
	// MaxWords is the largest number of space-separated words accepted
	// in a question.
	// Default: 30
	MaxWords int `yaml:"max_words"`

	// RestrictScope adds the countries/capitals scope rule to the system
	// instruction. The model then answers "#E-OS" for anything else.
	// Default: false
	RestrictScope bool `yaml:"restrict_scope"`
}

// DemoConfig contains configuration for the demo outbound API call.
type DemoConfig struct {
	// URL is the endpoint called by GET /api.
	// Default: "https://httpbin.org"
	URL string `yaml:"url"`

	// Timeout bounds the demo call. Zero means no timeout.
	// Default: 0
	Timeout time.Duration `yaml:"timeout"`
}

// KeepAliveConfig contains configuration for the periodic self-ping.
type KeepAliveConfig struct {
	// Enabled controls whether the self-ping runs.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Interval between pings.
	// Default: 10m
	Interval time.Duration `yaml:"interval"`

	// Timeout bounds a single ping.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactSecrets masks API keys and bearer tokens in log attributes.
	// Default: true
	RedactSecrets bool `yaml:"redact_secrets"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "promptbot"
	Namespace string `yaml:"namespace"`

	// RequestDurationBuckets defines histogram buckets in seconds.
	// Default: [0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30]
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether spans are exported.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample when Sampler is "ratio".
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP/gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name reported in traces.
	// Default: "promptbot"
	ServiceName string `yaml:"service_name"`

	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds exporter calls.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
