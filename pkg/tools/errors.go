package tools

import "fmt"

// MalformedArgumentsError is returned when a tool call's arguments are not
// a JSON object, or a known tool's content field is missing or not a string.
type MalformedArgumentsError struct {
	Tool      string
	Arguments string
	Cause     error
}

// Error implements the error interface.
func (e *MalformedArgumentsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed arguments for tool %q: %v", e.Tool, e.Cause)
	}
	return fmt.Sprintf("malformed arguments for tool %q", e.Tool)
}

// Unwrap returns the underlying error.
func (e *MalformedArgumentsError) Unwrap() error {
	return e.Cause
}
