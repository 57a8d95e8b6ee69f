package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewRejectsBadEncoding(t *testing.T) {
	_, err := New(Config{Level: "info", Encoding: "xml"})
	assert.Error(t, err)
}

func TestNewAppliesLevel(t *testing.T) {
	l, err := New(Config{Level: "warn", Encoding: "console", Development: true})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestSetAndWith(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	With(zap.String("config", "analytics")).Info("loaded")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "loaded", entry.Message)
	assert.Equal(t, "analytics", entry.ContextMap()["config"])
}

func TestGetBuildsDefault(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { Set(prev) })

	Set(nil)
	assert.NotNil(t, Get())
}

func TestLevelHelpers(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Debug("debug", zap.Int("n", 1))
	Info("info")
	Warn("warn")
	Error("error")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(1), entries[0].ContextMap()["n"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "error", entries[3].Message)
}
