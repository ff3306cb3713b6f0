package completion

import (
	"fmt"
	"strings"
)

// InvalidInputError is returned when a question fails a precondition. The
// message is safe to show to the caller.
type InvalidInputError struct {
	Message string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return e.Message
}

// UpstreamError is returned when the completion service is unreachable,
// answers with a non-success status, or returns no choices.
type UpstreamError struct {
	// StatusCode is the HTTP status returned upstream, or 0 when no
	// response was received.
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion upstream returned status %d: %v", e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("completion upstream failed: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ValidateInput checks a question before it is sent upstream. It fails when
// the question is blank, or has more than maxWords tokens when split on a
// single space.
func ValidateInput(text string, maxWords int) error {
	if strings.TrimSpace(text) == "" {
		return &InvalidInputError{Message: "Question is required."}
	}
	if len(strings.Split(text, " ")) > maxWords {
		return &InvalidInputError{
			Message: fmt.Sprintf("Prompt was too long. Must be less than %d words.", maxWords+1),
		}
	}
	return nil
}
