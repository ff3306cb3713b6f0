// Package tracing provides OpenTelemetry tracing for the service.
//
// When enabled, spans are sampled with an always, never or ratio sampler
// (parent based) and exported in batches over OTLP/gRPC. When disabled the
// Tracer is a noop and adds no measurable cost.
//
// Spans emitted by the service:
//   - one server span per HTTP request, named after the matched route
//   - completion.request around each chat-completion call
//   - tools.dispatch around each tool call
//   - demo.call around the demo upstream call
//   - keepalive.ping around each self-ping
package tracing
