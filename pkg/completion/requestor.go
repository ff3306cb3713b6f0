package completion

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"go.opentelemetry.io/otel/attribute"

	"sfa-hq/promptbot/pkg/config"
	"sfa-hq/promptbot/pkg/telemetry/metrics"
	"sfa-hq/promptbot/pkg/telemetry/tracing"
	"sfa-hq/promptbot/pkg/tools"
)

// Requestor obtains a model response for a user question.
type Requestor interface {
	RequestCompletion(ctx context.Context, userText string) (*ModelResponse, error)
}

// Options configures an OpenAIRequestor.
type Options struct {
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
	MaxWords int
	Rules    []string
	Tools    []tools.Spec

	Logger  *slog.Logger
	Metrics *metrics.Collector
	Tracer  *tracing.Tracer
}

// OptionsFromConfig builds Options from the service configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:   cfg.OpenAI.APIKey,
		BaseURL:  cfg.OpenAI.BaseURL,
		Model:    cfg.OpenAI.Model,
		Timeout:  cfg.OpenAI.Timeout,
		MaxWords: cfg.Bot.MaxWords,
		Rules:    Rules(cfg.Bot.RestrictScope),
		Tools:    tools.Catalogue(),
	}
}

// OpenAIRequestor sends questions to an OpenAI-compatible chat-completion
// endpoint, advertising the tool catalogue on every request.
type OpenAIRequestor struct {
	client   openai.Client
	model    string
	maxWords int
	rules    []string
	tools    []tools.Spec

	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
}

// NewOpenAIRequestor creates a requestor. Retries are disabled: a failed
// call is reported to the caller as is.
func NewOpenAIRequestor(opts Options) *OpenAIRequestor {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Model == "" {
		opts.Model = config.DefaultOpenAIModel
	}
	if opts.MaxWords == 0 {
		opts.MaxWords = config.DefaultMaxWords
	}
	if opts.Rules == nil {
		opts.Rules = Rules(false)
	}
	if opts.Tools == nil {
		opts.Tools = tools.Catalogue()
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, option.WithHTTPClient(&http.Client{Timeout: opts.Timeout}))
	}

	return &OpenAIRequestor{
		client:   openai.NewClient(clientOpts...),
		model:    opts.Model,
		maxWords: opts.MaxWords,
		rules:    opts.Rules,
		tools:    opts.Tools,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		tracer:   opts.Tracer,
	}
}

// toolParams converts tool specs to the SDK's function tool definitions.
func toolParams(specs []tools.Spec) []openai.ChatCompletionToolUnionParam {
	params := make([]openai.ChatCompletionToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		params = append(params, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        spec.Name,
			Description: openai.String(spec.Description),
			Parameters:  shared.FunctionParameters(spec.Parameters),
		}))
	}
	return params
}

// NewChatRequest pairs userText with the requestor's rules and tools.
func (r *OpenAIRequestor) NewChatRequest(userText string) ChatRequest {
	return ChatRequest{
		Rules:    r.rules,
		UserText: userText,
		Tools:    r.tools,
	}
}

// Params builds the SDK request for req: one system message holding the
// joined rules, one user message, and the tools as function definitions.
func (r *OpenAIRequestor) Params(req ChatRequest) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemInstruction(req.Rules)),
			openai.UserMessage(req.UserText),
		},
		Model: openai.ChatModel(r.model),
		Tools: toolParams(req.Tools),
	}
}

// RequestCompletion validates userText, sends it with the rules and tools,
// and returns the first choice's message.
func (r *OpenAIRequestor) RequestCompletion(ctx context.Context, userText string) (resp *ModelResponse, err error) {
	if err := ValidateInput(userText, r.maxWords); err != nil {
		r.metrics.RecordCompletion(metrics.OutcomeInvalid, 0)
		return nil, err
	}

	ctx, span := r.tracer.Start(ctx, "completion.request")
	span.SetAttributes(attribute.String("llm.model", r.model))
	defer func() { tracing.End(span, err) }()

	start := time.Now()
	completion, err := r.client.Chat.Completions.New(ctx, r.Params(r.NewChatRequest(userText)))
	duration := time.Since(start)

	if err != nil {
		upstream := &UpstreamError{Cause: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			upstream.StatusCode = apiErr.StatusCode
		}
		r.metrics.RecordCompletion(metrics.OutcomeError, duration)
		r.logger.ErrorContext(ctx, "completion request failed",
			"model", r.model,
			"status", upstream.StatusCode,
			"error", err,
			"duration_ms", duration.Milliseconds(),
		)
		return nil, upstream
	}

	if len(completion.Choices) == 0 {
		r.metrics.RecordCompletion(metrics.OutcomeError, duration)
		return nil, &UpstreamError{Cause: errors.New("response contained no choices")}
	}

	r.metrics.RecordCompletion(metrics.OutcomeSuccess, duration)

	message := completion.Choices[0].Message
	resp = &ModelResponse{Text: message.Content}
	for _, tc := range message.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCallRequest{
			ID:            tc.ID,
			ToolName:      tc.Function.Name,
			ArgumentsJSON: tc.Function.Arguments,
		})
	}

	span.SetAttributes(attribute.Int("llm.tool_calls", len(resp.ToolCalls)))
	r.logger.DebugContext(ctx, "completion received",
		"model", r.model,
		"tool_calls", len(resp.ToolCalls),
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}
