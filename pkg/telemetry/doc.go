// Package telemetry groups the service's observability packages.
//
//   - logging: log/slog logger with request IDs and secret redaction
//   - metrics: Prometheus collector for HTTP, completion, tool and keep-alive metrics
//   - tracing: OpenTelemetry spans exported over OTLP/gRPC
//
// Each is configured from the telemetry section of the configuration:
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: json
//	  metrics:
//	    enabled: true
//	    path: /metrics
//	  tracing:
//	    enabled: false
//	    endpoint: localhost:4317
package telemetry
