package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/memsweep/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			gt.Equal(t, logging.ParseLogLevel(tc.input), tc.expected)
		})
	}
}

func TestNewLoggerWithFormat(t *testing.T) {
	t.Run("JSON format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatJSON)
		logger.Info("sweep started", "group_id", "C123")

		gt.S(t, buf.String()).Contains(`"msg":"sweep started"`)
		gt.S(t, buf.String()).Contains(`"group_id":"C123"`)
	})

	t.Run("Auto format falls back to JSON for non terminal writers", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelDebug, &buf)
		logger.Debug("page fetched", "offset", 100)

		gt.S(t, buf.String()).Contains(`"offset":100`)
	})

	t.Run("Level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatJSON)
		logger.Info("hidden")

		gt.Equal(t, buf.Len(), 0)
	})
}
