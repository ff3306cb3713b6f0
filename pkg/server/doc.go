// Package server runs the prompt bot's HTTP server.
//
// Start listens on the configured address and blocks until the context is
// cancelled or the listener fails. Cancellation triggers a graceful
// shutdown bounded by server.shutdown_timeout:
//
//	ctx, stop := cli.SetupSignalHandler()
//	defer stop()
//
//	srv := server.New(cfg.Server, api.NewRouter(deps), logger)
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
package server
