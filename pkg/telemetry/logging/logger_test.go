package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfa-hq/promptbot/pkg/config"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output: %s", buf.String())
	return entry
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "json", config: Config{Level: "info", Format: "json"}},
		{name: "text", config: Config{Level: "debug", Format: "text"}},
		{name: "defaults", config: Config{}},
		{name: "upper case level", config: Config{Level: "WARN"}},
		{name: "invalid level", config: Config{Level: "trace"}, wantErr: true},
		{name: "invalid format", config: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Writer = &bytes.Buffer{}
			logger, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "warn", Writer: buf})
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Format: "text", Writer: buf})
	require.NoError(t, err)

	logger.Info("Reversing the string...")
	assert.Contains(t, buf.String(), `msg="Reversing the string..."`)
}

func TestHandler_RequestIDFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Writer: buf})
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "request completed")

	entry := decode(t, buf)
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestHandler_NoRequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Writer: buf})
	require.NoError(t, err)

	logger.InfoContext(context.Background(), "startup")

	entry := decode(t, buf)
	_, ok := entry["request_id"]
	assert.False(t, ok)
}

func TestHandler_RedactsSecrets(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Writer: buf, RedactSecrets: true})
	require.NoError(t, err)

	logger.Info("calling upstream",
		"api_key", "sk-abcdef123456",
		"header", "Bearer abc.def.ghi",
		"detail", "key was sk-live999 today",
		"error", errors.New("401 for sk-proj-XYZ"),
		slog.Group("upstream", slog.String("authorization", "Bearer zzz")),
	)

	out := buf.String()
	assert.NotContains(t, out, "abcdef123456")
	assert.NotContains(t, out, "abc.def.ghi")
	assert.NotContains(t, out, "live999")
	assert.NotContains(t, out, "proj-XYZ")
	assert.NotContains(t, out, "zzz")

	entry := decode(t, buf)
	assert.Equal(t, "sk-a***", entry["api_key"])
	assert.Equal(t, "Bearer ***", entry["header"])
	assert.Equal(t, "key was sk-*** today", entry["detail"])
}

func TestHandler_RedactsWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Writer: buf, RedactSecrets: true})
	require.NoError(t, err)

	logger.With("api_key", "sk-abcdef").Info("ready")

	assert.NotContains(t, buf.String(), "sk-abcdef")
}

func TestHandler_RedactionDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Writer: buf})
	require.NoError(t, err)

	logger.Info("raw", "api_key", "sk-abcdef")

	assert.True(t, strings.Contains(buf.String(), "sk-abcdef"))
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.LoggingConfig{Level: "debug", Format: "text", AddSource: true, RedactSecrets: true})

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.AddSource)
	assert.True(t, cfg.RedactSecrets)
}

func TestRedactAPIKey(t *testing.T) {
	assert.Equal(t, "***", RedactAPIKey("sk-"))
	assert.Equal(t, "sk-a***", RedactAPIKey("sk-abcdef"))
}
