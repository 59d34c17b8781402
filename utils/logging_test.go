package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "json", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Warn("printer offline", "printer_id", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "printer offline", line["message"])
	assert.Equal(t, "WARNING", line["severity"])
	assert.EqualValues(t, 3, line["printer_id"])
}

func TestLocalDevHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLocalDevHandler(&buf, slog.LevelDebug, false)).With("request_id", "abc")

	logger.Info("GET /printers", "status", 200)

	assert.Contains(t, buf.String(), "INFO GET /printers request_id=abc status=200")
	assert.NotContains(t, buf.String(), "msg=")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelDebug, ParseLogLevel(""))
}
