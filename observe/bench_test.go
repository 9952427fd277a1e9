package observe

import (
	"context"
	"io"
	"testing"
)

// BenchmarkStructuredLogger_Info measures one JSON log record.
func BenchmarkStructuredLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "directory call completed",
			Field{Key: "duration_ms", Value: 12.5},
		)
	}
}

// BenchmarkStructuredLogger_BelowLevel measures the filtered-out path.
func BenchmarkStructuredLogger_BelowLevel(b *testing.B) {
	logger := NewLoggerWithWriter("warn", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "directory call completed")
	}
}

// BenchmarkMiddleware_Do measures the nop-instrumented call path.
func BenchmarkMiddleware_Do(b *testing.B) {
	mw := NewMiddleware(NewNopTracer(), NopMetrics(), NopLogger())
	ctx := context.Background()
	meta := CallMeta{Operation: "validate-token"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mw.Do(ctx, meta, func(ctx context.Context) error {
			return nil
		})
	}
}
