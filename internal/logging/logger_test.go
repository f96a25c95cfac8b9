package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/storecheck/storecheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSONConsole(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Info("Step 1: Go to page", zap.String("url", "https://dodopizza.ru/"))
	logger.Debug("filtered out")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug entries must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Step 1: Go to page", entry["msg"])
	assert.Equal(t, "https://dodopizza.ru/", entry["url"])
	assert.Equal(t, "storecheck", entry["logger"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(config.LoggerConfig{Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Warn("cart count lagging")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "cart count lagging")
}

func TestNew_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storecheck.log")
	var console bytes.Buffer

	logger, err := New(config.LoggerConfig{Level: "debug", Format: "console", File: path}, zapcore.AddSync(&console))
	require.NoError(t, err)

	logger.Debug("scenario finished", zap.String("scenario", "catalog-count"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenario":"catalog-count"`)
}

func TestNew_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggerConfig
	}{
		{name: "bad level", cfg: config.LoggerConfig{Level: "loud"}},
		{name: "bad format", cfg: config.LoggerConfig{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, zapcore.AddSync(&bytes.Buffer{}))
			assert.Error(t, err)
		})
	}
}
