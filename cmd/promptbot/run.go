package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sfa-hq/promptbot/pkg/api"
	"sfa-hq/promptbot/pkg/cli"
	"sfa-hq/promptbot/pkg/keepalive"
	"sfa-hq/promptbot/pkg/server"
)

var runFlags struct {
	port     int
	logLevel string
	dryRun   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the promptbot HTTP server",
	Long: `Start the promptbot HTTP server with the specified configuration.

Configuration is read from the config file if it exists, then from a .env
file in the working directory, then from the environment (PORT, BASE_URL,
OPEN_AI_KEY and PROMPTBOT_* variables).

Examples:
  # Start with defaults and environment
  promptbot run

  # Start with custom config
  promptbot run --config /etc/promptbot/config.yaml

  # Override port
  promptbot run --port 8080

  # Validate config without starting server
  promptbot run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runFlags.port, "port", "p", 0, "override listen port")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if runFlags.port != 0 {
		cfg.Server.Port = runFlags.port
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		return err
	}

	if runFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration valid")
		return nil
	}

	defer a.close()

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	handler := api.NewRouter(api.Deps{
		Bot:     a.bot,
		Demo:    a.demo,
		CORS:    cfg.Server.CORS,
		Logger:  a.logger,
		Metrics: a.metrics,
		Tracer:  a.tracer,
	})
	srv := server.New(cfg.Server, handler, a.logger)

	if cfg.KeepAlive.Enabled {
		pinger := keepalive.NewPinger(cfg.Server.BaseURL, cfg.KeepAlive, a.logger, a.metrics, a.tracer)
		if err := pinger.Start(ctx); err != nil {
			a.logger.Warn("failed to start keep-alive", "error", err)
		} else {
			defer pinger.Stop()
		}
	}

	a.logger.Info(fmt.Sprintf("Server is running on port %d", cfg.Server.Port),
		"base_url", cfg.Server.BaseURL,
		"metrics_enabled", a.metrics.Enabled(),
		"tracing_enabled", a.tracer.Enabled(),
	)

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}
	return nil
}
