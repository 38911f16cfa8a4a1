package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"geekstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "geekstore"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestNewLogger_JSONCarriesServiceName(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig("info", false))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("order created", slog.Uint64("order_id", 7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "geekstore", line["service"])
	assert.Equal(t, "order created", line["msg"])
	assert.EqualValues(t, 7, line["order_id"])
}

func TestNewLogger_PrettyUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "service=geekstore")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, newTestConfig("loud", false))
	assert.Error(t, err)
}
