package tmlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLoggerDiscardsEverything(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
		l = l.With("k", "v")
		l.Debug("x")
	})
}

func TestSlogAdapterWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler))

	l.Info("compiling", "source", "a.tm")

	assert.Contains(t, buf.String(), "compiling")
	assert.Contains(t, buf.String(), "source=a.tm")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("module", "a.tm")

	l.Warn("duplicate type")

	assert.Contains(t, buf.String(), "module=a.tm")
	assert.Contains(t, buf.String(), "duplicate type")
}

func TestNewSlogAdapterNilUsesDefault(t *testing.T) {
	l := NewSlogAdapter(nil)
	assert.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug("x") })
}
