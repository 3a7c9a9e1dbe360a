package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/soltixdb/wavg/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLogger_ErrorFieldWrittenAsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.DebugLevel)

	logger.Error("Error calculating weighted average", "dataset", "zero-weights", "error", errors.New("at least one weight must be non-zero"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Error calculating weighted average", entry["message"])
	assert.Equal(t, "zero-weights", entry["dataset"])
	assert.Equal(t, "at least one weight must be non-zero", entry["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown", "count", 3)
	entry := decodeLine(t, &buf)
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, zerolog.InfoLevel)
	child := base.With("component", "demo")

	child.Info("ready", "odd")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "demo", entry["component"])
	assert.NotContains(t, entry, "odd")
	assert.Empty(t, base.fields)
}

func TestSetGlobal(t *testing.T) {
	prev := Global()
	t.Cleanup(func() { SetGlobal(prev) })

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)
	SetGlobal(logger)

	assert.Same(t, logger, Global())
}

func TestNewFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wavg.log")

	logger, err := NewFromConfig(config.LoggingConfig{
		Level:      "info",
		Format:     "json",
		OutputPath: path,
	})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"kept"`)
}

func TestNewFromConfig_Streams(t *testing.T) {
	for _, out := range []string{"", "stderr", "stdout"} {
		logger, err := NewFromConfig(config.LoggingConfig{Level: "warn", Format: "console", OutputPath: out})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestGetTimeFormat(t *testing.T) {
	assert.Equal(t, "Mon Jan _2 15:04:05 MST 2006", getTimeFormat("Unix"))
	assert.Equal(t, "3:04PM", getTimeFormat("Kitchen"))
	assert.Equal(t, "2006-01-02T15:04:05Z07:00", getTimeFormat(""))
}
