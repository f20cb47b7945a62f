package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/geodeforge/logging"
)

func TestNew_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Writer: &buf})
	require.NoError(t, err)

	log.Info("blueprint searched", zap.Int("blueprint", 1), zap.Int("geodes", 9))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "blueprint searched", entry["msg"])
	assert.EqualValues(t, 9, entry["geodes"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	require.NoError(t, err)

	log.Info("hello", zap.String("who", "factory"))
	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "hello")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Info("quiet")
	log.Debug("quieter")
	assert.Empty(t, buf.String())
	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrFormat)

	_, err = logging.New(logging.Options{Level: "shouty"})
	assert.Error(t, err)
}
