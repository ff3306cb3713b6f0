// Package middleware provides the HTTP middleware wrapped around the API
// routes.
//
// The chain, outermost first:
//
//	RequestID -> Logging -> Recovery -> tracing -> CORS -> mux
//
// RequestID sits outside Logging so every access log line carries the ID.
// Recovery sits inside Logging so a recovered panic is logged and counted
// as the 500 it turned into.
//
// Logging also records the HTTP metrics. Handlers report the route they
// were registered under with SetRoute, which keeps the route label bounded
// by the route table instead of raw paths.
package middleware
