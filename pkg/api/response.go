package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sfa-hq/promptbot/pkg/api/types"
	"sfa-hq/promptbot/pkg/bot"
	"sfa-hq/promptbot/pkg/completion"
)

// Response messages.
const (
	MessageBotResponded = "Bot responded successfully"
	MessageBotFailed    = "Failed to get a response from the bot"
	MessageDemoCalled   = "Demo API called (httpbin.org)"
	MessageDemoFailed   = "Failed to call external API"
	MessageLive         = "API is Live!"
	MessageNoRoute      = "API route does not exist"
	MessageInvalidBody  = "Request body must be a JSON object"
)

// writeJSON writes data as the JSON response body with statusCode.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps err to a status code and envelope. Input errors become
// 400 with their message. Completion failures become a generic 500 with
// the details only in the log. Anything else takes the generic 500 path
// with the error message.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var invalid *bot.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, types.Failure(invalid.Message))
		return
	}

	var upstream *completion.UpstreamError
	if errors.As(err, &upstream) {
		logger.ErrorContext(r.Context(), "bot request failed",
			"error", err,
			"upstream_status", upstream.StatusCode,
		)
		writeJSON(w, http.StatusInternalServerError, types.ServerError(MessageBotFailed))
		return
	}

	logger.ErrorContext(r.Context(), "unhandled error",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	writeJSON(w, http.StatusInternalServerError, types.ServerError(err.Error()))
}
