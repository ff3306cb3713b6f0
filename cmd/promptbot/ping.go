package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"sfa-hq/promptbot/pkg/cli"
	"sfa-hq/promptbot/pkg/keepalive"
)

var pingFlags struct {
	url string
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping the service health endpoint once",
	Long: `Send one keep-alive ping to the service's health endpoint and exit
non-zero if it fails. The target defaults to the configured base URL.

Examples:
  promptbot ping
  promptbot ping --url https://promptbot.example.com`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)

	pingCmd.Flags().StringVar(&pingFlags.url, "url", "", "override the base URL to ping")
}

func runPing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	target := cfg.Server.BaseURL
	if pingFlags.url != "" {
		target = pingFlags.url
	}

	pinger := keepalive.NewPinger(target, cfg.KeepAlive, a.logger, a.metrics, a.tracer)
	if !pinger.Ping(context.Background()) {
		return cli.NewCommandError("ping", errors.New("health check failed for "+pinger.URL()))
	}
	return nil
}
