package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"sfa-hq/promptbot/pkg/api/types"
)

// maxBodyBytes bounds the POST /prompt-bot body.
const maxBodyBytes = 100 << 10

// Answerer answers a user question.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// DemoCaller performs the demo outbound call and returns its status code.
type DemoCaller interface {
	Call(ctx context.Context) (int, error)
}

// Handlers holds the route handlers and their collaborators.
type Handlers struct {
	bot    Answerer
	demo   DemoCaller
	logger *slog.Logger
}

// NewHandlers creates the route handlers.
func NewHandlers(bot Answerer, demo DemoCaller, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{bot: bot, demo: demo, logger: logger}
}

// PromptBot handles POST /prompt-bot.
func (h *Handlers) PromptBot(w http.ResponseWriter, r *http.Request) {
	var req types.PromptRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, types.Failure(MessageInvalidBody))
		return
	}

	answer, err := h.bot.Answer(r.Context(), req.Question)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, types.Success(MessageBotResponded, answer))
}

// Demo handles GET /api.
func (h *Handlers) Demo(w http.ResponseWriter, r *http.Request) {
	status, err := h.demo.Call(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "demo call failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{Error: MessageDemoFailed})
		return
	}

	writeJSON(w, http.StatusOK, types.DemoResponse{Message: MessageDemoCalled, Data: status})
}

// Health handles GET /. It never depends on an upstream.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: MessageLive})
}

// NotFound answers every request no route matched.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, types.Failure(MessageNoRoute))
}
