// Package logging builds the service's log/slog logger.
//
// The returned logger writes JSON or text, tags every record with the
// request ID carried in its context, and masks OpenAI-style API keys and
// bearer tokens:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json", RedactSecrets: true})
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "req-123")
//	slog.InfoContext(ctx, "calling upstream", "api_key", "sk-abc123")
//	// {"level":"INFO","msg":"calling upstream","api_key":"sk-a***","request_id":"req-123"}
package logging
