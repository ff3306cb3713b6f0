package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.port").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateOpenAI(&cfg.OpenAI)...)
	errs = append(errs, validateBot(&cfg.Bot)...)
	errs = append(errs, validateDemo(&cfg.Demo)...)
	errs = append(errs, validateKeepAlive(&cfg.KeepAlive)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.Port < 1 || cfg.Port > 65535 {
		errs = append(errs, FieldError{
			Field:   "server.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if msg := checkURL(cfg.BaseURL); msg != "" {
		errs = append(errs, FieldError{Field: "server.base_url", Message: msg})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be non-negative",
		})
	}
	if cfg.MaxHeaderBytes > 10*1024*1024 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes exceeds reasonable limit (10MB)",
		})
	}

	if cfg.CORS.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "server.cors.max_age",
			Message: "max age must be non-negative",
		})
	}

	return errs
}

// validateOpenAI does not require an API key. The upstream rejects the call
// and the request surfaces as an upstream failure, which keeps GET / and
// GET /api usable without credentials.
func validateOpenAI(cfg *OpenAIConfig) []FieldError {
	var errs []FieldError

	if msg := checkURL(cfg.BaseURL); msg != "" {
		errs = append(errs, FieldError{Field: "openai.base_url", Message: msg})
	}
	if strings.TrimSpace(cfg.Model) == "" {
		errs = append(errs, FieldError{
			Field:   "openai.model",
			Message: "model is required",
		})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "openai.timeout",
			Message: "timeout must be positive",
		})
	}

	return errs
}

func validateBot(cfg *BotConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxWords < 1 {
		errs = append(errs, FieldError{
			Field:   "bot.max_words",
			Message: "max words must be at least 1",
		})
	}

	return errs
}

func validateDemo(cfg *DemoConfig) []FieldError {
	var errs []FieldError

	if msg := checkURL(cfg.URL); msg != "" {
		errs = append(errs, FieldError{Field: "demo.url", Message: msg})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "demo.timeout",
			Message: "timeout must be positive",
		})
	}

	return errs
}

func validateKeepAlive(cfg *KeepAliveConfig) []FieldError {
	var errs []FieldError

	if !cfg.Enabled {
		return errs
	}

	if cfg.Interval < time.Second {
		errs = append(errs, FieldError{
			Field:   "keepalive.interval",
			Message: "interval must be at least 1s",
		})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "keepalive.timeout",
			Message: "timeout must be positive",
		})
	}

	return errs
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if msg := checkMetricsPath(cfg.Metrics.Path); msg != "" {
			errs = append(errs, FieldError{Field: "telemetry.metrics.path", Message: msg})
		}
	}

	if cfg.Tracing.Enabled {
		validSamplers := map[string]bool{"always": true, "never": true, "ratio": true}
		if !validSamplers[cfg.Tracing.Sampler] {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sampler",
				Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Tracing.Sampler),
			})
		}
		if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: "sample ratio must be between 0 and 1",
			})
		}
		if cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "endpoint is required when tracing is enabled",
			})
		}
	}

	return errs
}

// checkURL returns a message describing why raw is not an absolute
// http(s) URL, or "" when it is.
func checkURL(raw string) string {
	if raw == "" {
		return "URL is required"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("invalid URL format: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("unsupported URL scheme %q: must be http or https", u.Scheme)
	}
	if u.Host == "" {
		return "URL must include a host"
	}
	return ""
}

// RoutePaths are the paths served by the API. The metrics endpoint may not
// reuse any of them.
var RoutePaths = []string{"/", "/api", "/prompt-bot"}

// checkMetricsPath returns a message describing why p cannot be mounted as
// an exact metrics route, or "" when it can.
func checkMetricsPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "metrics path must start with '/'"
	}
	for _, route := range RoutePaths {
		if p == route {
			return fmt.Sprintf("metrics path %q collides with an API route", p)
		}
	}
	if strings.HasSuffix(p, "/") {
		return "metrics path must not end with '/'"
	}
	if strings.ContainsAny(p, "{} \t") || path.Clean(p) != p {
		return fmt.Sprintf("metrics path %q must be a clean literal path", p)
	}
	return ""
}
