package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"sfa-hq/promptbot/pkg/bot"
	"sfa-hq/promptbot/pkg/cli"
	"sfa-hq/promptbot/pkg/completion"
	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/demo"
	"sfa-hq/promptbot/pkg/telemetry/logging"
	"sfa-hq/promptbot/pkg/telemetry/metrics"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
	"sfa-hq/promptbot/pkg/tools"
)

// app holds the components shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
	bot     *bot.Bot
	demo    *demo.Client
}

// loadConfig loads the configuration file (optional), .env and environment
// overrides, and installs the result as the global configuration.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	cfg := config.GetConfig()
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}

// newApp builds the logger, telemetry and bot pipeline from cfg. Logs go
// to logOut.
func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	logCfg := logging.FromConfig(cfg.Telemetry.Logging)
	logCfg.Writer = logOut
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	slog.SetDefault(logger)

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	opts := completion.OptionsFromConfig(cfg)
	opts.Logger = logger
	opts.Metrics = collector
	opts.Tracer = tracer
	requestor := completion.NewOpenAIRequestor(opts)

	dispatcher := tools.NewDispatcher(logger, collector, tracer)

	if cfg.OpenAI.APIKey == "" {
		logger.Warn("no OpenAI API key configured; set OPEN_AI_KEY or OPENAI_API_KEY")
	} else {
		logger.Debug("completion client configured",
			"model", cfg.OpenAI.Model,
			"api_key", logging.RedactAPIKey(cfg.OpenAI.APIKey),
		)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		tracer:  tracer,
		bot:     bot.New(requestor, dispatcher, cfg.Bot.MaxWords, logger, tracer),
		demo:    demo.NewClient(cfg.Demo, logger, tracer),
	}, nil
}

// close flushes and stops the tracer. Every command that builds an app
// defers it so spans from short-lived commands are exported.
func (a *app) close() {
	if err := a.tracer.Shutdown(context.Background()); err != nil {
		a.logger.Warn("tracer shutdown failed", "error", err)
	}
}
