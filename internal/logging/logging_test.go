package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "path", "cape.png")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=cape.png")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capechanger.log")

	log, closer, err := OpenFile(path, "info")
	require.NoError(t, err)
	log.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")

	log, closer, err = OpenFile("", "info")
	require.NoError(t, err)
	log.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestOpenFileIsCreatedOnFirstRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capechanger.log")

	log, closer, err := OpenFile(path, "warn")
	require.NoError(t, err)
	assert.NoFileExists(t, path)

	log.Info("below level")
	assert.NoFileExists(t, path)

	log.Warn("written")
	assert.FileExists(t, path)
	require.NoError(t, closer.Close())
}
