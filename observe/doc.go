// Package observe provides the observability primitives for template
// resolution: structured logging, template/login metrics, and tracing.
//
// It is a pure instrumentation library: no resolution logic, no transport,
// no I/O beyond exporter setup. The template provider accepts its Logger,
// Metrics, and Tracer interfaces by injection and defaults to no-ops.
package observe
