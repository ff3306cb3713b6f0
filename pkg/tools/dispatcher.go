package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"sfa-hq/promptbot/pkg/telemetry/metrics"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
)

// Dispatcher runs tool calls requested by the model against the local
// transforms.
type Dispatcher struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
}

// NewDispatcher creates a Dispatcher. Nil logger falls back to
// slog.Default; nil metrics and tracer disable recording.
func NewDispatcher(logger *slog.Logger, collector *metrics.Collector, tracer *tracing.Tracer) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger, metrics: collector, tracer: tracer}
}

// Dispatch is Dispatcher.Dispatch with default logging and no metrics.
func Dispatch(name, argumentsJSON string) (string, error) {
	return NewDispatcher(nil, nil, nil).Dispatch(context.Background(), name, argumentsJSON)
}

// Dispatch parses argumentsJSON as a JSON object and applies the transform
// registered under name to its content field.
//
// Arguments are parsed before the name is looked up, so malformed JSON is
// an error even for an unknown tool. An unknown name with well-formed
// arguments returns UnknownToolResult and a nil error.
func (d *Dispatcher) Dispatch(ctx context.Context, name, argumentsJSON string) (result string, err error) {
	ctx, span := d.tracer.Start(ctx, "tools.dispatch")
	span.SetAttributes(attribute.String("tool.name", name))
	defer func() { tracing.End(span, err) }()

	var args map[string]json.RawMessage
	if err := json.Unmarshal([]byte(argumentsJSON), &args); err != nil {
		d.metrics.RecordToolDispatch(name, metrics.OutcomeInvalid)
		return "", &MalformedArgumentsError{Tool: name, Arguments: argumentsJSON, Cause: err}
	}

	entry, ok := transforms[name]
	if !ok {
		d.logger.WarnContext(ctx, "unknown tool requested", "tool", name)
		d.metrics.RecordToolDispatch(name, metrics.OutcomeUnknown)
		return UnknownToolResult, nil
	}

	d.logger.InfoContext(ctx, entry.action, "tool", name)

	content, err := contentArg(args)
	if err != nil {
		d.metrics.RecordToolDispatch(name, metrics.OutcomeInvalid)
		return "", &MalformedArgumentsError{Tool: name, Arguments: argumentsJSON, Cause: err}
	}

	d.metrics.RecordToolDispatch(name, metrics.OutcomeSuccess)
	return entry.transform(content), nil
}

func contentArg(args map[string]json.RawMessage) (string, error) {
	raw, ok := args["content"]
	if !ok || string(raw) == "null" {
		return "", errors.New("missing content field")
	}
	var content string
	if err := json.Unmarshal(raw, &content); err != nil {
		return "", errors.New("content field is not a string")
	}
	return content, nil
}
