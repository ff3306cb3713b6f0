package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultPort            = 5000
	DefaultBaseURL         = "http://localhost:5000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled = true

	// OpenAI defaults
	DefaultOpenAIBaseURL = "https://api.openai.com/v1/"
	DefaultOpenAIModel   = "gpt-4o-mini"

	// Bot defaults
	DefaultMaxWords = 30

	// Demo defaults
	DefaultDemoURL = "https://httpbin.org"

	// Keep-alive defaults
	DefaultKeepAliveEnabled  = true
	DefaultKeepAliveInterval = 10 * time.Minute
	DefaultKeepAliveTimeout  = 30 * time.Second

	// Telemetry defaults
	DefaultLoggingLevel       = "info"
	DefaultLoggingFormat      = "json"
	DefaultRedactSecrets      = true
	DefaultMetricsEnabled     = true
	DefaultMetricsPath        = "/metrics"
	DefaultMetricsNamespace   = "promptbot"
	DefaultTracingSampler     = "ratio"
	DefaultTracingSampleRatio = 0.1
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingService     = "promptbot"
	DefaultTracingTimeout     = 10 * time.Second
)

// DefaultAllowedOrigins allows every origin, matching a bare cors() setup.
var DefaultAllowedOrigins = []string{"*"}

// DefaultAllowedMethods mirrors the methods a bare cors() setup advertises.
var DefaultAllowedMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}

// DefaultAllowedHeaders are the request headers accepted on preflight.
var DefaultAllowedHeaders = []string{"Content-Type", "X-Request-ID"}

// DefaultExposedHeaders are the response headers exposed to browsers.
var DefaultExposedHeaders = []string{"X-Request-ID"}

// DefaultRequestDurationBuckets are tuned for completion round trips.
var DefaultRequestDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			CORS: CORSConfig{Enabled: DefaultCORSEnabled},
		},
		KeepAlive: KeepAliveConfig{Enabled: DefaultKeepAliveEnabled},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{RedactSecrets: DefaultRedactSecrets},
			Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets defaults for any fields that have zero values.
// Boolean switches are not touched here because their zero value is a
// legitimate choice; Default and LoadConfig seed them before decoding.
// This function is idempotent.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	// CORS defaults
	if len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = append([]string(nil), DefaultAllowedMethods...)
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = append([]string(nil), DefaultAllowedHeaders...)
	}
	if len(cfg.Server.CORS.ExposedHeaders) == 0 {
		cfg.Server.CORS.ExposedHeaders = append([]string(nil), DefaultExposedHeaders...)
	}

	// OpenAI defaults
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = DefaultOpenAIModel
	}

	// Bot defaults
	if cfg.Bot.MaxWords == 0 {
		cfg.Bot.MaxWords = DefaultMaxWords
	}

	// Demo defaults
	if cfg.Demo.URL == "" {
		cfg.Demo.URL = DefaultDemoURL
	}

	// Keep-alive defaults
	if cfg.KeepAlive.Interval == 0 {
		cfg.KeepAlive.Interval = DefaultKeepAliveInterval
	}
	if cfg.KeepAlive.Timeout == 0 {
		cfg.KeepAlive.Timeout = DefaultKeepAliveTimeout
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(cfg.Telemetry.Metrics.RequestDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.RequestDurationBuckets = append([]float64(nil), DefaultRequestDurationBuckets...)
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingService
	}
	if cfg.Telemetry.Tracing.Timeout == 0 {
		cfg.Telemetry.Tracing.Timeout = DefaultTracingTimeout
	}
}
