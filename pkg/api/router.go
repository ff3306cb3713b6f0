package api

import (
	"log/slog"
	"net/http"

	"sfa-hq/promptbot/pkg/api/middleware"
	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/metrics"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Bot     Answerer
	Demo    DemoCaller
	CORS    config.CORSConfig
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Tracer  *tracing.Tracer
}

// NewRouter returns the API handler with the full middleware chain applied.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	h := NewHandlers(d.Bot, d.Demo, d.Logger)

	mux := http.NewServeMux()
	handle(mux, "POST /prompt-bot", h.PromptBot)
	handle(mux, "GET /api", h.Demo)
	handle(mux, "GET /{$}", h.Health)
	if d.Metrics.Enabled() {
		handle(mux, "GET "+d.Metrics.Path(), d.Metrics.Handler().ServeHTTP)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		tracing.SetRoute(r.Context(), middleware.UnmatchedRoute)
		h.NotFound(w, r)
	})

	var handler http.Handler = mux
	handler = middleware.CORS(d.CORS)(handler)
	handler = d.Tracer.Middleware(handler)
	handler = middleware.Recovery(d.Logger)(handler)
	handler = middleware.Logging(d.Logger, d.Metrics)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// handle registers fn under pattern and reports the pattern as the route
// to tracing and to the logging middleware.
func handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		tracing.SetRoute(r.Context(), pattern)
		middleware.SetRoute(r.Context(), pattern)
		fn(w, r)
	})
}
