package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YoshitsuguKoike/catalogcheck/internal/app"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	assert.Equal(t, "WARN: shown 3\nERROR: shown 4\n", buf.String())

	buf.Reset()
	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())
	logger.Debug("now visible")
	assert.Equal(t, "DEBUG: now visible\n", buf.String())
}

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{" INFO ", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelWarn},
		{"verbose", LogLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LogLevelFromString(tt.in))
		})
	}
}

func TestInitializeLoggers_RoutesAppLayer(t *testing.T) {
	var buf bytes.Buffer
	InitGlobalLogger("info", &buf)
	InitializeLoggers(GetLogger())

	app.GetLogger().Info("from %s", "app")
	app.GetLogger().Debug("filtered")

	assert.Equal(t, "INFO: from app\n", buf.String())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "LEVEL(9)", LogLevel(9).String())
}
