package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for namespaced environment overrides.
const EnvPrefix = "PROMPTBOT_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parse decodes YAML on top of the defaults so that switches which
// default to true stay on unless the file turns them off.
func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. A missing file is not an error: the service
// can run from the environment alone.
//
// The loading sequence is:
// 1. Load YAML from file (or start from defaults)
// 2. Apply default values
// 3. Load a .env file from the working directory, if present
// 4. Apply environment variable overrides
// 5. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment. Variables that are already set win.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load environment file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// The bare names PORT, BASE_URL and OPEN_AI_KEY are honoured first; the
// PROMPTBOT_SECTION_FIELD names take precedence over them.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = i
		}
	}
	if val := os.Getenv("BASE_URL"); val != "" {
		cfg.Server.BaseURL = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.OpenAI.APIKey = val
	}
	if val := os.Getenv("OPEN_AI_KEY"); val != "" {
		cfg.OpenAI.APIKey = val
	}

	// Server overrides
	if val := env("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := env("SERVER_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = i
		}
	}
	if val := env("SERVER_BASE_URL"); val != "" {
		cfg.Server.BaseURL = val
	}
	if val := env("SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := env("SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := env("SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if val := env("SERVER_CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.CORS.Enabled = b
		}
	}
	if val := env("SERVER_CORS_ALLOWED_ORIGINS"); val != "" {
		cfg.Server.CORS.AllowedOrigins = splitList(val)
	}

	// OpenAI overrides
	if val := env("OPENAI_API_KEY"); val != "" {
		cfg.OpenAI.APIKey = val
	}
	if val := env("OPENAI_BASE_URL"); val != "" {
		cfg.OpenAI.BaseURL = val
	}
	if val := env("OPENAI_MODEL"); val != "" {
		cfg.OpenAI.Model = val
	}
	if val := env("OPENAI_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.OpenAI.Timeout = d
		}
	}

	// Bot overrides
	if val := env("BOT_MAX_WORDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Bot.MaxWords = i
		}
	}
	if val := env("BOT_RESTRICT_SCOPE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Bot.RestrictScope = b
		}
	}

	// Demo overrides
	if val := env("DEMO_URL"); val != "" {
		cfg.Demo.URL = val
	}
	if val := env("DEMO_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Demo.Timeout = d
		}
	}

	// Keep-alive overrides
	if val := env("KEEPALIVE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.KeepAlive.Enabled = b
		}
	}
	if val := env("KEEPALIVE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.KeepAlive.Interval = d
		}
	}
	if val := env("KEEPALIVE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.KeepAlive.Timeout = d
		}
	}

	// Telemetry overrides
	if val := env("TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := env("TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := env("TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := env("TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	if val := env("TELEMETRY_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	if val := env("TELEMETRY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := env("TELEMETRY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}

func env(name string) string {
	return os.Getenv(EnvPrefix + name)
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
