package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "promptbot",
	Short: "Promptbot - a small OpenAI-backed question answering service",
	Long: `Promptbot answers short questions through an OpenAI chat model.

The model can ask the service to run one of three text tools (uppercase,
reverse, replace spaces with dashes); their results are returned instead
of the model's text. The service also exposes a demo outbound call, a
health check, Prometheus metrics and a periodic self-ping.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
