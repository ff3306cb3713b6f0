// Package cli provides helpers shared by the promptbot commands: typed
// command errors, output formatting and shutdown signal handling.
//
//	ctx, stop := cli.SetupSignalHandler()
//	defer stop()
//
//	formatter := cli.NewFormatter(cli.FormatJSON)
//	_ = formatter.FormatTo(os.Stdout, result)
package cli
