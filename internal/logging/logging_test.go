package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: FormatJSON, Output: &buf})
	logger.Debug().Str("archetype", "baseline").Msg("computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "baseline", entry["archetype"])
	assert.Equal(t, "computed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "verbose", "  "} {
		logger := New(Config{Level: level, Format: FormatJSON, Output: &bytes.Buffer{}})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel(), "level %q", level)
	}
}

func TestNewBlankLevelStillLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: " \t", Format: FormatJSON, Output: &buf})
	logger.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	padded := New(Config{Level: " Debug ", Format: FormatJSON, Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.DebugLevel, padded.GetLevel())
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "WARN", Format: FormatJSON, Output: &buf})
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: FormatConsole, Output: &buf})
	logger.Info().Msg("listening")
	assert.Contains(t, buf.String(), "listening")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(Config{Format: FormatJSON, Output: &buf}), "server")
	logger.Info().Msg("started")
	assert.Contains(t, buf.String(), `"component":"server"`)
}
