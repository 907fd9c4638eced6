package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/audioprofile/internal/logging"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug("matched", "rate", 48000)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "matched", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 48000, record["rate"])
}

func TestNewConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := logging.New(logging.Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.ErrorContains(t, err, "unsupported value")
}

func TestNewNop(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("discarded")
	assert.False(t, logger.Enabled(t.Context(), 0))
}
