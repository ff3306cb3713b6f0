package keepalive

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfa-hq/promptbot/internal/mocks"
	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/metrics"
)

func TestPing_Success(t *testing.T) {
	ms := mocks.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/", mocks.MockHealthResponse())

	buf := &bytes.Buffer{}
	p := NewPinger(ms.URL(), config.KeepAliveConfig{}, slog.New(slog.NewTextHandler(buf, nil)), nil, nil)

	assert.True(t, p.Ping(context.Background()))
	assert.Contains(t, buf.String(), "Server pinged successfully: API is Live!")
	assert.Equal(t, 1, ms.GetRequestCount())
}

func TestPing_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response *mocks.MockResponse
		wantLog  string
	}{
		{
			name:     "server error",
			response: &mocks.MockResponse{StatusCode: http.StatusInternalServerError, Body: `{"message":"down"}`},
			wantLog:  "status code 500",
		},
		{
			name:     "not json",
			response: &mocks.MockResponse{StatusCode: http.StatusOK, Body: "pong"},
			wantLog:  "failed to decode response",
		},
		{
			name:    "no route",
			wantLog: "status code 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := mocks.NewMockServer()
			defer ms.Close()
			if tt.response != nil {
				ms.SetResponse("/", *tt.response)
			}

			buf := &bytes.Buffer{}
			p := NewPinger(ms.URL(), config.KeepAliveConfig{}, slog.New(slog.NewTextHandler(buf, nil)), nil, nil)

			assert.False(t, p.Ping(context.Background()))
			assert.Contains(t, buf.String(), "Error pinging server:")
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestPing_Unreachable(t *testing.T) {
	ms := mocks.NewMockServer()
	url := ms.URL()
	ms.Close()

	buf := &bytes.Buffer{}
	p := NewPinger(url, config.KeepAliveConfig{Timeout: time.Second}, slog.New(slog.NewTextHandler(buf, nil)), nil, nil)

	assert.False(t, p.Ping(context.Background()))
	assert.Contains(t, buf.String(), "Error pinging server:")
}

func TestPing_RecordsMetrics(t *testing.T) {
	ms := mocks.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/", mocks.MockHealthResponse())

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true, Namespace: "test"}, registry)
	p := NewPinger(ms.URL()+"/", config.KeepAliveConfig{}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), collector, nil)

	p.Ping(context.Background())
	ms.SetResponse("/", mocks.MockServerError())
	p.Ping(context.Background())

	expected := `
# HELP test_keepalive_pings_total Total number of self-pings by outcome
# TYPE test_keepalive_pings_total counter
test_keepalive_pings_total{outcome="error"} 1
test_keepalive_pings_total{outcome="success"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_keepalive_pings_total")
	assert.NoError(t, err)
}

func TestNewPinger_URLAndSchedule(t *testing.T) {
	p := NewPinger("https://bot.example.com/", config.KeepAliveConfig{}, nil, nil, nil)
	assert.Equal(t, "https://bot.example.com/", p.URL())
	assert.Equal(t, "@every 10m0s", p.Schedule())

	p = NewPinger("https://bot.example.com", config.KeepAliveConfig{Interval: 90 * time.Second}, nil, nil, nil)
	assert.Equal(t, "https://bot.example.com/", p.URL())
	assert.Equal(t, "@every 1m30s", p.Schedule())
}

func TestPinger_StartStop(t *testing.T) {
	p := NewPinger("http://localhost:1", config.KeepAliveConfig{Interval: time.Hour}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)
	assert.Nil(t, p.NextRun())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, p.Start(ctx))
	assert.True(t, p.IsRunning())
	assert.Error(t, p.Start(ctx), "second start is rejected")

	next := p.NextRun()
	require.NotNil(t, next)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *next, time.Minute)

	p.Stop()
	assert.False(t, p.IsRunning())
	p.Stop()
}

func TestPinger_StopsOnContextCancel(t *testing.T) {
	p := NewPinger("http://localhost:1", config.KeepAliveConfig{Interval: time.Hour}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !p.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestPinger_RestartIgnoresEarlierContext(t *testing.T) {
	p := NewPinger("http://localhost:1", config.KeepAliveConfig{Interval: time.Hour}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)

	first, cancelFirst := context.WithCancel(context.Background())
	require.NoError(t, p.Start(first))
	p.Stop()

	second, cancelSecond := context.WithCancel(context.Background())
	defer cancelSecond()
	require.NoError(t, p.Start(second))

	cancelFirst()
	time.Sleep(50 * time.Millisecond)
	assert.True(t, p.IsRunning(), "cancelling the first run's context must not stop the second run")

	cancelSecond()
	assert.Eventually(t, func() bool { return !p.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestPinger_StopReleasesWatcher(t *testing.T) {
	p := NewPinger("http://localhost:1", config.KeepAliveConfig{Interval: time.Hour}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)

	require.NoError(t, p.Start(context.Background()))
	stop := p.stop
	require.NotNil(t, stop)

	p.Stop()

	select {
	case <-stop:
	default:
		t.Fatal("Stop did not release the context watcher")
	}
	assert.Nil(t, p.stop)
}

func TestPinger_FiresOnSchedule(t *testing.T) {
	ms := mocks.NewMockServer()
	defer ms.Close()
	ms.SetResponse("/", mocks.MockHealthResponse())

	p := NewPinger(ms.URL(), config.KeepAliveConfig{Interval: time.Second}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Start(ctx))
	defer p.Stop()

	assert.Eventually(t, func() bool { return ms.GetRequestCount() > 0 }, 5*time.Second, 50*time.Millisecond)
}
