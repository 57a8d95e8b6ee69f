// Package testutil provides testing utilities for ron-fun.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/XuRonTing/ron-fun/pkg/logger"
	"github.com/XuRonTing/ron-fun/pkg/metrics"
)

// TestLogger installs a logger that writes to the test output and restores
// the previous global logger when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	l := zaptest.NewLogger(t)
	swapLogger(t, l)
	return l
}

// ObserveLogs installs an in-memory logger at debug level for the duration
// of the test and returns the captured entries.
func ObserveLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	swapLogger(t, zap.New(core))
	return logs
}

func swapLogger(t *testing.T, l *zap.Logger) {
	prev := logger.Get()
	t.Cleanup(func() { logger.Set(prev) })
	logger.Set(l)
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// LoadCounter snapshots the load counters of one configuration so a test can
// assert on the difference after exercising it.
type LoadCounter struct {
	config           string
	success, failure float64
}

// CountLoads snapshots the current load counters of config.
func CountLoads(config string) LoadCounter {
	return LoadCounter{
		config:  config,
		success: loads(config, metrics.OutcomeSuccess),
		failure: loads(config, metrics.OutcomeFailure),
	}
}

// Delta returns the successful and failed loads recorded since the snapshot.
func (c LoadCounter) Delta() (success, failure float64) {
	return loads(c.config, metrics.OutcomeSuccess) - c.success,
		loads(c.config, metrics.OutcomeFailure) - c.failure
}

func loads(config, outcome string) float64 {
	return promtest.ToFloat64(metrics.ConfigLoads.WithLabelValues(config, outcome))
}
