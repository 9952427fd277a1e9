// Package observe provides structured logging, metrics, and tracing for
// directory client calls.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. The directory client takes a Logger for fault
// reporting; rpc.WithObservability wraps a transport with the full
// Middleware (span, counters, duration, log record per call).
package observe
