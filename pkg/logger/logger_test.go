package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(Config{Level: "loud"}) })
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	l.With("component", "sorter").Info("Package classified", "category", "SPECIAL")
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Package classified", entry["msg"])
	assert.Equal(t, "sorter", entry["component"])
	assert.Equal(t, "SPECIAL", entry["category"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
}

func TestWithContext_AddsRunID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := fromCore(core)

	ctx := ContextWithRunID(context.Background(), "run-123")
	l.WithContext(ctx).Debug("hello")
	l.WithContext(context.Background()).Debug("no run id")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "run-123", entries[0].ContextMap()["run_id"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestWith_DoesNotShareFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := fromCore(core).With("a", 1)

	left := base.With("side", "left")
	right := base.With("side", "right")
	left.Info("l")
	right.Info("r")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "left", entries[0].ContextMap()["side"])
	assert.Equal(t, "right", entries[1].ContextMap()["side"])
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fromCore(core).Named("sort").Error("boom")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sort", entries[0].LoggerName)
}

func TestRunID_Missing(t *testing.T) {
	assert.Equal(t, "", RunID(context.Background()))
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Error("discarded") })
}
