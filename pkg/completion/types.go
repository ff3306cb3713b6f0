package completion

import "sfa-hq/promptbot/pkg/tools"

// ChatRequest is everything sent to the completion service for one question.
type ChatRequest struct {
	Rules    []string
	UserText string
	Tools    []tools.Spec
}

// ModelResponse is the first choice's message as returned by the model.
// An empty Text means the model sent no text content.
type ModelResponse struct {
	Text      string
	ToolCalls []ToolCallRequest
}

// ToolCallRequest is one function call the model asked the caller to run.
type ToolCallRequest struct {
	ID            string
	ToolName      string
	ArgumentsJSON string
}
