package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PORT", "BASE_URL", "OPEN_AI_KEY", "OPENAI_API_KEY"} {
		t.Setenv(name, "")
	}
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, `
server:
  port: 8080
  base_url: "https://bot.example.com"
  read_timeout: "60s"

openai:
  api_key: "test-key-123"
  model: "gpt-4o"

bot:
  restrict_scope: true

keepalive:
  enabled: false

telemetry:
  logging:
    level: "debug"
    format: "text"
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port %d, got %d", 8080, cfg.Server.Port)
	}
	if cfg.Server.BaseURL != "https://bot.example.com" {
		t.Errorf("expected base url %q, got %q", "https://bot.example.com", cfg.Server.BaseURL)
	}
	if cfg.Server.ReadTimeout != 60*time.Second {
		t.Errorf("expected read timeout %v, got %v", 60*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.OpenAI.APIKey != "test-key-123" {
		t.Errorf("expected api key %q, got %q", "test-key-123", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected model %q, got %q", "gpt-4o", cfg.OpenAI.Model)
	}
	if !cfg.Bot.RestrictScope {
		t.Error("expected restrict_scope to be true")
	}
	if cfg.KeepAlive.Enabled {
		t.Error("expected keepalive to be disabled")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected log level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}

	// Defaults fill what the file left out
	if cfg.OpenAI.BaseURL != DefaultOpenAIBaseURL {
		t.Errorf("expected openai base url %q, got %q", DefaultOpenAIBaseURL, cfg.OpenAI.BaseURL)
	}
	if cfg.Bot.MaxWords != DefaultMaxWords {
		t.Errorf("expected max words %d, got %d", DefaultMaxWords, cfg.Bot.MaxWords)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to stay enabled by default")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "failed to read configuration file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "server: [unclosed")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse configuration file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	configPath := writeConfig(t, `
server:
  port: 70000
telemetry:
  logging:
    level: "verbose"
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestLoadConfigWithEnvOverrides_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", DefaultBaseURL, cfg.Server.BaseURL)
	}
}

func TestLoadConfigWithEnvOverrides_BareNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "6000")
	t.Setenv("BASE_URL", "https://bot.example.com")
	t.Setenv("OPEN_AI_KEY", "sk-from-env")

	configPath := writeConfig(t, "server:\n  port: 8080\n")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 6000 {
		t.Errorf("expected port %d, got %d", 6000, cfg.Server.Port)
	}
	if cfg.Server.BaseURL != "https://bot.example.com" {
		t.Errorf("expected base url %q, got %q", "https://bot.example.com", cfg.Server.BaseURL)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("expected api key %q, got %q", "sk-from-env", cfg.OpenAI.APIKey)
	}
}

func TestLoadConfigWithEnvOverrides_PrefixedNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "6000")
	t.Setenv("PROMPTBOT_SERVER_PORT", "7000")
	t.Setenv("PROMPTBOT_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PROMPTBOT_BOT_RESTRICT_SCOPE", "true")
	t.Setenv("PROMPTBOT_KEEPALIVE_INTERVAL", "30s")
	t.Setenv("PROMPTBOT_TELEMETRY_METRICS_ENABLED", "false")
	t.Setenv("PROMPTBOT_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("expected port %d, got %d", 7000, cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected model %q, got %q", "gpt-4o", cfg.OpenAI.Model)
	}
	if !cfg.Bot.RestrictScope {
		t.Error("expected restrict_scope to be true")
	}
	if cfg.KeepAlive.Interval != 30*time.Second {
		t.Errorf("expected interval %v, got %v", 30*time.Second, cfg.KeepAlive.Interval)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to be disabled")
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 2 || cfg.Server.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected allowed origins: %v", cfg.Server.CORS.AllowedOrigins)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "not a url")

	_, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected validation error after overrides")
	}
	if !strings.Contains(err.Error(), "server.base_url") {
		t.Errorf("expected error to mention server.base_url, got: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PROMPTBOT_DEMO_URL=https://demo.example\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// godotenv sets variables with os.Setenv; register cleanup first.
	t.Setenv("PROMPTBOT_DEMO_URL", "")
	os.Unsetenv("PROMPTBOT_DEMO_URL")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("failed to load env file: %v", err)
	}
	if got := os.Getenv("PROMPTBOT_DEMO_URL"); got != "https://demo.example" {
		t.Errorf("expected %q, got %q", "https://demo.example", got)
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("expected no error for missing env file, got %v", err)
	}
}
