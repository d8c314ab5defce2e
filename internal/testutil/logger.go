// Package testutil holds shared helpers for the package tests.
package testutil

import (
	"log/slog"
	"testing"
)

// Logger returns a debug-level slog.Logger routed through t.Log, so engine
// logging shows up only for failing tests or under -v.
func Logger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logWriter{tb: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type logWriter struct {
	tb testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(string(p))
	return len(p), nil
}
