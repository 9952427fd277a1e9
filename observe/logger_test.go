package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStructuredLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "dropped debug")
	logger.Info(ctx, "dropped info")
	logger.Warn(ctx, "kept warn")
	logger.Error(ctx, "kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level records not filtered: %s", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("high-level records missing: %s", out)
	}
}

func TestStructuredLogger_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "validate failed",
		Field{Key: "operation", Value: "validate-token"},
		Field{Key: "duration_ms", Value: 12.0},
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "validate failed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["operation"] != "validate-token" {
		t.Errorf("operation = %v", entry["operation"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestStructuredLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	logger.Info(context.Background(), "login attempt",
		Field{Key: "principal", Value: "alice"},
		Field{Key: "credential", Value: "pw1"},
		Field{Key: "token", Value: "PTOK-XYZ"},
		Field{Key: "trust_token", Value: "TOK-ABC123"},
	)

	out := buf.String()
	for _, leaked := range []string{"pw1", "PTOK-XYZ", "TOK-ABC123"} {
		if strings.Contains(out, leaked) {
			t.Errorf("secret %q leaked into log output: %s", leaked, out)
		}
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("non-secret field redacted: %s", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("redaction marker missing: %s", out)
	}
}

func TestStructuredLogger_WithCall(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	callLogger := logger.WithCall(CallMeta{Operation: "validate-token", Endpoint: "https://dir.example.com"})
	callLogger.Info(context.Background(), "done")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["call.operation"] != "validate-token" {
		t.Errorf("call.operation = %v", entry["call.operation"])
	}
	if entry["call.endpoint"] != "https://dir.example.com" {
		t.Errorf("call.endpoint = %v", entry["call.endpoint"])
	}

	// The parent logger is unaffected.
	buf.Reset()
	logger.Info(context.Background(), "plain")
	entry = map[string]any{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := entry["call.operation"]; ok {
		t.Error("parent logger inherited call context")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	ctx := context.Background()

	// Must not panic, must discard everything.
	logger.Info(ctx, "x")
	logger.Warn(ctx, "x")
	logger.Error(ctx, "x")
	logger.Debug(ctx, "x")
	if logger.WithCall(CallMeta{Operation: "op"}) == nil {
		t.Error("WithCall returned nil")
	}
}
