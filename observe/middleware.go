package observe

import (
	"context"
	"time"
)

// Middleware wraps directory calls with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Do is safe for concurrent use.
//   - Context: propagates context through tracing spans.
//   - Errors: errors from the wrapped call are recorded and propagated
//     unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware from the given components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Do runs one directory call inside a span, records its duration and error
// status, and emits a structured log record.
func (m *Middleware) Do(ctx context.Context, meta CallMeta, fn func(context.Context) error) error {
	ctx, span := m.tracer.StartSpan(ctx, meta)

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start)

	m.tracer.EndSpan(span, err)
	m.metrics.RecordCall(ctx, meta, duration, err)

	callLogger := m.logger.WithCall(meta)
	fields := []Field{
		{Key: "duration_ms", Value: float64(duration.Milliseconds())},
	}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		callLogger.Warn(ctx, "directory call failed", fields...)
	} else {
		callLogger.Debug(ctx, "directory call completed", fields...)
	}

	return err
}
