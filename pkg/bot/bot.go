package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sfa-hq/promptbot/pkg/completion"
	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
	"sfa-hq/promptbot/pkg/tools"
)

// OutOfScopeReply replaces the model's out-of-scope marker.
const OutOfScopeReply = "Sorry but that is outside my scope, how else can i help?"

// ToolDispatcher runs one tool call requested by the model.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name, argumentsJSON string) (string, error)
}

// Bot turns a question into the text returned to the caller.
type Bot struct {
	requestor  completion.Requestor
	dispatcher ToolDispatcher
	maxWords   int
	logger     *slog.Logger
	tracer     *tracing.Tracer
}

// New creates a Bot. A maxWords of zero uses the default limit and a nil
// dispatcher runs the local tool transforms.
func New(requestor completion.Requestor, dispatcher ToolDispatcher, maxWords int, logger *slog.Logger, tracer *tracing.Tracer) *Bot {
	if maxWords == 0 {
		maxWords = config.DefaultMaxWords
	}
	if logger == nil {
		logger = slog.Default()
	}
	if dispatcher == nil {
		dispatcher = tools.NewDispatcher(logger, nil, tracer)
	}
	return &Bot{
		requestor:  requestor,
		dispatcher: dispatcher,
		maxWords:   maxWords,
		logger:     logger,
		tracer:     tracer,
	}
}

// Answer validates question, requests a completion and assembles the reply.
// Validation failures are returned as *InvalidInputError without calling
// the requestor.
func (b *Bot) Answer(ctx context.Context, question string) (answer string, err error) {
	if err := ValidateQuestion(question, b.maxWords); err != nil {
		return "", err
	}

	ctx, span := b.tracer.Start(ctx, "bot.answer")
	defer func() { tracing.End(span, err) }()

	resp, err := b.requestor.RequestCompletion(ctx, question)
	if err != nil {
		return "", err
	}

	return b.Assemble(ctx, resp)
}

// Assemble builds the reply from a model response. Tool calls are only run
// when the model sent no text. The first dispatch error aborts assembly.
func (b *Bot) Assemble(ctx context.Context, resp *completion.ModelResponse) (string, error) {
	if resp.Text == completion.OutOfScopeMarker {
		return OutOfScopeReply, nil
	}

	if resp.Text != "" || len(resp.ToolCalls) == 0 {
		return resp.Text, nil
	}

	var sb strings.Builder
	for i, call := range resp.ToolCalls {
		result, err := b.dispatcher.Dispatch(ctx, call.ToolName, call.ArgumentsJSON)
		if err != nil {
			b.logger.ErrorContext(ctx, "tool call failed",
				"tool", call.ToolName,
				"call_id", call.ID,
				"index", i,
				"error", err,
			)
			return "", fmt.Errorf("tool call %d (%s): %w", i, call.ToolName, err)
		}
		sb.WriteString(result)
		sb.WriteString("\n")
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("bot.tool_calls", len(resp.ToolCalls)))

	return sb.String(), nil
}
