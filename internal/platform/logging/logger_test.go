package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out))
	return out
}

func TestLoggerWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("service", "livescore-api")

	logger.Warn("upstream slow", "endpoint", "/fixtures", "error", errors.New("timeout"), "dangling")

	line := decodeLine(t, &buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "upstream slow", line["msg"])
	assert.Equal(t, "livescore-api", line["service"])
	assert.Equal(t, "/fixtures", line["endpoint"])
	assert.Equal(t, "timeout", line["error"])
	assert.Contains(t, line, "dangling")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")

	assert.Zero(t, buf.Len())
}

func TestLoggerAddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "with span")

	line := decodeLine(t, &buf)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", line["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", line["span_id"])
}

func TestLoggerMirrorReceivesInheritedFields(t *testing.T) {
	var got []any
	var gotMsg string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		if level == LevelError {
			gotMsg = msg
			got = args
		}
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("env", "dev")
	logger.Error("boom", "fixture_id", 42)
	logger.Debug("ignored below level")

	assert.Equal(t, "boom", gotMsg)
	assert.Equal(t, []any{"env", "dev", "fixture_id", 42}, got)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := Default()
	SetDefault(NewJSONWriter(&buf, LevelInfo))
	t.Cleanup(func() { SetDefault(previous) })

	var logger *Logger
	logger.Info("from nil receiver")

	assert.Equal(t, "from nil receiver", decodeLine(t, &buf)["msg"])
	assert.NoError(t, logger.Sync())
}
