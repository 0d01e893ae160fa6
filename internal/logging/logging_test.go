package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestLogFilePath(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "", LogFilePath("", now))
	assert.Equal(t, filepath.Join("logs", "rpp2object_20240102_030405.log"), LogFilePath("logs", now))
}

func TestNew_WritesBothTargets(t *testing.T) {
	var console, file bytes.Buffer
	log := New(zerolog.InfoLevel, &console, &file)

	log.Debug().Msg("hidden")
	log.Info().Str("project", "song.rpp").Msg("compiled")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "compiled")
	assert.Contains(t, file.String(), "project=song.rpp")
	assert.NotContains(t, file.String(), "\x1b[", "file output is not coloured")
}

func TestSetup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, closeFn, err := Setup("info", dir)
	require.NoError(t, err)
	log.Info().Msg("hello")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestSetup_NoLogsDir(t *testing.T) {
	_, closeFn, err := Setup("debug", "")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
}
