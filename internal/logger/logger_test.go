package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	// Verify base attributes
	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	// Verify message
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	// Verify level
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	// Verify custom attributes
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	// Test with logger
	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request_id, got %s", got)
	}
}

func TestFromContext_AttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json", ServiceName: "svc"}, &buf)
	t.Cleanup(func() { InitLoggerWithWriter(DefaultConfig(), io.Discard) })

	FromContext(WithRequestID(context.Background(), "req-7")).Debug("scoped")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "req-7" {
		t.Errorf("Expected request_id=req-7, got %v", logEntry["request_id"])
	}
	if logEntry["level"] != "DEBUG" {
		t.Errorf("Expected level=DEBUG, got %v", logEntry["level"])
	}
}

func TestWithAttrs_Accumulates(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	t.Cleanup(func() { InitLoggerWithWriter(DefaultConfig(), io.Discard) })

	ctx := WithRequestID(context.Background(), "req-9")
	ctx = WithAttrs(ctx, AttrKeyAccountID, "alice")
	ctx = WithAttrs(ctx, AttrKeyOperation, "open_case")
	FromContext(ctx).Info("committed")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	for key, want := range map[string]string{
		AttrKeyRequestID:   "req-9",
		AttrKeyAccountID:   "alice",
		AttrKeyOperation:   "open_case",
		AttrKeyService:     DefaultServiceName,
		AttrKeyEnvironment: DefaultEnvironment,
	} {
		if logEntry[key] != want {
			t.Errorf("Expected %s=%s, got %v", key, want, logEntry[key])
		}
	}
}

func TestWithAttrs_DoesNotLeakIntoParent(t *testing.T) {
	parent := WithAttrs(context.Background(), "a", 1)
	_ = WithAttrs(parent, "b", 2)

	attrs, _ := parent.Value(attrsKey).([]any)
	if len(attrs) != 2 {
		t.Errorf("Expected parent to keep 2 attribute args, got %d", len(attrs))
	}
}

func TestConfigLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.IsJSON() {
		t.Error("Expected text format by default")
	}
	if !(Config{Format: "JSON"}).IsJSON() {
		t.Error("Expected format matching to ignore case")
	}
}
