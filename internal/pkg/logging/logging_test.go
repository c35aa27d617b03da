//go:build unit

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"tripmatch/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithWriter_ReleaseWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", TimeZone: "JST", TimeZoneOffset: 9 * 3600, TimeFormat: "2006-01-02T15:04:05-07:00"}

	logger := NewWithWriter(cfg, &buf, true)
	logger.Debug("hidden")
	logger.Info("group formed", "group_id", "g-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "group formed", line["msg"])
	assert.Equal(t, "g-1", line["group_id"])
	assert.Contains(t, line["time"], "+09:00")
}

func TestNewWithWriter_DevIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LogConfig{Level: "info"}, &buf, false)
	logger.Info("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
