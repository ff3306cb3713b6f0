// Package metrics exposes the service's Prometheus metrics.
//
// A Collector registers HTTP, completion, tool-dispatch and keep-alive
// metrics on its own registry and serves them with promhttp:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// All Record methods are safe on a nil *Collector, so components can be
// built without metrics in tests.
package metrics
