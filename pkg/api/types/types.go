// Package types defines the JSON bodies returned by the HTTP API.
package types

import "net/http"

// Envelope is the response body of the bot routes, the 404 fallback and
// the generic error path.
//
//	{"success": true, "message": "Bot responded successfully", "data": "..."}
//	{"success": false, "message": "API route does not exist"}
//	{"success": false, "status": 500, "message": "..."}
type Envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success returns a successful envelope carrying data.
func Success(message string, data any) *Envelope {
	return &Envelope{Success: true, Message: message, Data: data}
}

// Failure returns a failed envelope without a status field.
func Failure(message string) *Envelope {
	return &Envelope{Success: false, Message: message}
}

// ServerError returns the envelope of the generic 500 path.
func ServerError(message string) *Envelope {
	return &Envelope{Success: false, Status: http.StatusInternalServerError, Message: message}
}

// MessageResponse is the body of the health check.
type MessageResponse struct {
	Message string `json:"message"`
}

// DemoResponse is the body of a successful demo call. Data is the upstream
// status code.
type DemoResponse struct {
	Message string `json:"message"`
	Data    int    `json:"data"`
}

// ErrorResponse is the body of a failed demo call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PromptRequest is the body of POST /prompt-bot.
type PromptRequest struct {
	Question string `json:"question"`
}
