package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(&traceHandler{base: base})
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestLoggerWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.InfoContext(context.Background(), "hello", "key", "value")

	entry := logLine(t, &buf)
	if entry["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key=value, got %v", entry["key"])
	}
	if _, ok := entry["trace_id"]; ok {
		t.Error("expected no trace_id without an active span")
	}
}

func TestLoggerStampsTraceContext(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	ctx, span := StartSpan(context.Background(), "logged-op")
	logger.InfoContext(ctx, "inside span")
	span.End()

	entry := logLine(t, &buf)
	if entry["trace_id"] != TraceID(ctx) {
		t.Errorf("expected trace_id %s, got %v", TraceID(ctx), entry["trace_id"])
	}
	if entry["span_id"] == "" {
		t.Error("expected span_id to be set")
	}
}

func TestLoggerWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf).With("component", "checkout").WithGroup("req")

	logger.InfoContext(context.Background(), "grouped", "id", "42")

	entry := logLine(t, &buf)
	if entry["component"] != "checkout" {
		t.Errorf("expected component attr, got %v", entry["component"])
	}
	group, ok := entry["req"].(map[string]any)
	if !ok {
		t.Fatalf("expected req group, got %v", entry["req"])
	}
	if group["id"] != "42" {
		t.Errorf("expected grouped id 42, got %v", group["id"])
	}
}
