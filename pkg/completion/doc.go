// Package completion sends user questions to an OpenAI-compatible
// chat-completion service.
//
// Every request carries the same system instruction, built from the rules
// in DefaultRules, and advertises the tools from the tools package. The
// first choice's message is returned unmodified as a ModelResponse, which
// may hold text, tool calls, or both.
package completion
