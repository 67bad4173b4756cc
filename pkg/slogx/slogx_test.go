package slogx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmitsServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Service: "career-service",
		Version: "v0.1.0",
		Env:     "test",
		Level:   "info",
		Format:  "json",
		Output:  &buf,
	})

	logger.Info("hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "career-service", entry["service"])
	require.Equal(t, "v0.1.0", entry["version"])
	require.Equal(t, "test", entry["env"])
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "v", entry["k"])
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "error", Format: "json", Output: &buf})

	logger.Info("dropped")
	require.Zero(t, buf.Len())

	logger.Error("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "text", Output: &buf})

	logger.Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestNewLeavesDefaultLoggerAlone(t *testing.T) {
	before := slog.Default()

	var buf bytes.Buffer
	_ = New(Config{Format: "json", Output: &buf})

	require.Same(t, before, slog.Default())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), "level %q", in)
	}
}
