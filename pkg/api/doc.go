// Package api wires the HTTP routes of the prompt bot.
//
// Routes:
//
//	POST /prompt-bot  answer a question, running any tool calls the model asks for
//	GET  /api         call the demo upstream and report its status code
//	GET  /            health check
//	GET  /metrics     Prometheus metrics, when enabled
//
// Every other request gets a 404 envelope. Errors that escape a handler end
// in the generic 500 envelope carrying the error message.
package api
