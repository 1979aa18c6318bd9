// Package metrics provides observability hooks for inspection runs.
//
// It follows the Null Object pattern: components receive a Recorder through
// dependency injection and default to NoopRecorder, so metrics can be enabled
// by swapping in a real implementation without touching call sites.
//
//	session := watch.NewSession(svc, lay) // NoopRecorder by default
//	session.WithRecorder(metrics.NewPrometheusRecorder(registry))
//
// One-shot runs never record metrics; only watch mode activates the
// Prometheus recorder, and only when configured to.
package metrics
