package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", FormatConsole, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("feed load failed", zap.String("op", "list posts"))
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "feed load failed")
	assert.Contains(t, buf.String(), "list posts")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Debug("request completed", zap.Int("status", 200))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, float64(200), entry["status"])
}

func TestNewRejectsUnknownLevelAndFormat(t *testing.T) {
	_, err := New("loud", FormatConsole, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse log level")

	_, err = New("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported log format")
}
