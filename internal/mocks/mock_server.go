// Package mocks provides an upstream test double for the completion
// service and the demo and self-ping targets.
package mocks

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockServer is an httptest server returning canned responses per path.
// It records every request body so tests can inspect what was sent.
type MockServer struct {
	server    *httptest.Server
	responses map[string]MockResponse
	requests  map[string][][]byte
	count     int
	mu        sync.Mutex
}

// MockResponse defines a canned response.
type MockResponse struct {
	StatusCode int
	Body       any
	Delay      time.Duration
	Headers    map[string]string
}

// NewMockServer creates and starts a mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]MockResponse),
		requests:  make(map[string][][]byte),
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))
	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close shuts the mock server down.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets the canned response for path.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[path] = response
}

// GetRequestCount returns the number of requests received on any path.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.count
}

// LastRequestBody returns the body of the most recent request to path,
// or nil if there was none.
func (ms *MockServer) LastRequestBody(path string) []byte {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	bodies := ms.requests[path]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.count++
	ms.requests[r.URL.Path] = append(ms.requests[r.URL.Path], body)
	response, ok := ms.responses[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	switch v := response.Body.(type) {
	case nil:
		w.WriteHeader(response.StatusCode)
	case string:
		w.WriteHeader(response.StatusCode)
		_, _ = w.Write([]byte(v))
	case []byte:
		w.WriteHeader(response.StatusCode)
		_, _ = w.Write(v)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.StatusCode)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// MockToolCall is one function call placed in a mock completion.
type MockToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// MockOpenAIResponse creates a chat completion whose first choice holds
// content as plain text.
func MockOpenAIResponse(content string, model string) map[string]any {
	return completionBody(model, map[string]any{
		"role":    "assistant",
		"content": content,
	}, "stop")
}

// MockOpenAIToolCallResponse creates a chat completion whose first choice
// has null content and the given tool calls, in order.
func MockOpenAIToolCallResponse(model string, calls ...MockToolCall) map[string]any {
	toolCalls := make([]map[string]any, 0, len(calls))
	for _, c := range calls {
		toolCalls = append(toolCalls, map[string]any{
			"id":   c.ID,
			"type": "function",
			"function": map[string]any{
				"name":      c.Name,
				"arguments": c.Arguments,
			},
		})
	}
	return completionBody(model, map[string]any{
		"role":       "assistant",
		"content":    nil,
		"tool_calls": toolCalls,
	}, "tool_calls")
}

func completionBody(model string, message map[string]any, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       message,
				"finish_reason": finishReason,
				"logprobs":      nil,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockEmptyChoicesResponse creates a chat completion with no choices.
func MockEmptyChoicesResponse(model string) map[string]any {
	body := MockOpenAIResponse("", model)
	body["choices"] = []map[string]any{}
	return body
}

// MockErrorResponse creates an OpenAI-style error response.
func MockErrorResponse(statusCode int, message string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]any{
			"error": map[string]any{
				"message": message,
				"type":    "invalid_request_error",
				"code":    nil,
			},
		},
	}
}

// MockAuthError creates a 401 authentication error response.
func MockAuthError() MockResponse {
	return MockErrorResponse(http.StatusUnauthorized, "Incorrect API key provided")
}

// MockServerError creates a 500 internal server error response.
func MockServerError() MockResponse {
	return MockErrorResponse(http.StatusInternalServerError, "Internal server error")
}

// MockHealthResponse is the body GET / returns on a live service.
func MockHealthResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]any{"message": "API is Live!"},
	}
}
