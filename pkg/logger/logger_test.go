package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestLogger_ModuleExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "debug"}, ModuleExtractor)

	ctx := WithModule(context.Background(), "tx_demo")
	log.InfoContext(ctx, "mail sent")

	rec := decode(t, &buf)
	assert.Equal(t, "mail sent", rec["msg"])
	assert.Equal(t, "tx_demo", rec["module"])
}

func TestLogger_NoModuleInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, Config{}, ModuleExtractor)
	log.InfoContext(context.Background(), "plain")

	rec := decode(t, &buf)
	assert.NotContains(t, rec, "module")
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "warn"})
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Equal(t, "kept", decode(t, &buf)["msg"])
}

func TestLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Format: "text"})
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewContextHandler_DropsNilExtractors(t *testing.T) {
	t.Parallel()

	inner := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	assert.Same(t, inner, NewContextHandler(inner, nil, nil))
}

func TestFanoutHandler(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := fanoutHandler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(h).With(slog.String("component", "smtp"))

	log.Info("info only")
	assert.NotZero(t, a.Len())
	assert.Zero(t, b.Len())

	a.Reset()
	log.Error("both")
	assert.Equal(t, "smtp", decode(t, &a)["component"])
	assert.Equal(t, "smtp", decode(t, &b)["component"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
