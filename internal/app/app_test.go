package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/capechanger/internal/apply"
	"github.com/kyaoi/capechanger/internal/config"
	"github.com/kyaoi/capechanger/internal/locale"
	"github.com/kyaoi/capechanger/internal/preview"
)

func testSettings(root string) Settings {
	return Settings{
		ConfigFile:   filepath.Join(root, "config.txt"),
		ImagesDir:    filepath.Join(root, "images"),
		StateFile:    filepath.Join(root, "state.json"),
		LanguageFile: filepath.Join(root, "language.json"),
		PreviewScale: 8,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadInitialStateMissingConfig(t *testing.T) {
	root := t.TempDir()
	s := testSettings(root)

	_, err := LoadInitialState(s, discard())
	require.ErrorIs(t, err, config.ErrConfigMissing)

	assert.NoDirExists(t, s.ImagesDir)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadInitialStateMalformedConfig(t *testing.T) {
	root := t.TempDir()
	s := testSettings(root)
	require.NoError(t, os.WriteFile(s.ConfigFile, []byte("cape.png\n"), 0o644))

	_, err := LoadInitialState(s, discard())
	require.ErrorIs(t, err, config.ErrConfigMalformed)
	assert.NoDirExists(t, s.ImagesDir)
}

func TestLoadInitialState(t *testing.T) {
	root := t.TempDir()
	s := testSettings(root)
	dest := filepath.Join(root, "skins", "87")
	require.NoError(t, os.WriteFile(s.ConfigFile, []byte("cape.png\n"+dest+"\n"), 0o644))
	require.NoError(t, os.MkdirAll(s.ImagesDir, 0o755))
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(s.ImagesDir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.WriteFile(s.StateFile, []byte(`{"selected":"b.png"}`), 0o644))
	require.NoError(t, os.WriteFile(s.LanguageFile, []byte(`{"lang":"de"}`), 0o644))

	session, err := LoadInitialState(s, discard())
	require.NoError(t, err)

	assert.DirExists(t, dest)
	assert.Equal(t, config.Config{DestinationFilename: "cape.png", DestinationDir: dest}, session.Config)
	assert.Len(t, session.State.Menu.Entries, 3)
	assert.Equal(t, 1, session.State.Menu.Cursor)
	assert.Equal(t, "b.png", session.State.Menu.Applied)
	assert.Equal(t, locale.German, session.State.Menu.Lang)
}

func TestLoadInitialStateCreatesImagesDir(t *testing.T) {
	root := t.TempDir()
	s := testSettings(root)
	require.NoError(t, os.WriteFile(s.ConfigFile, []byte("cape.png\n"+filepath.Join(root, "dest")+"\n"), 0o644))

	session, err := LoadInitialState(s, discard())
	require.NoError(t, err)
	assert.DirExists(t, s.ImagesDir)
	assert.Empty(t, session.State.Menu.Entries)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("CAPECHANGER_IMAGES_DIR", "capes")
	t.Setenv("CAPECHANGER_PREVIEW_SCALE", "4")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "capes", s.ImagesDir)
	assert.Equal(t, 4, s.PreviewScale)
	assert.Equal(t, "config.txt", s.ConfigFile)
}

func TestNewPreviewer(t *testing.T) {
	p, err := newPreviewer("")
	require.NoError(t, err)
	assert.IsType(t, preview.TerminalPreviewer{}, p)

	p, err = newPreviewer("feh -Z")
	require.NoError(t, err)
	assert.IsType(t, &preview.CommandPreviewer{}, p)
}

func TestLoadInitialStateRejectsDestinationOverImages(t *testing.T) {
	root := t.TempDir()
	s := testSettings(root)
	require.NoError(t, os.WriteFile(s.ConfigFile, []byte("cape.png\n"+root+"\n"), 0o644))

	_, err := LoadInitialState(s, discard())
	require.ErrorIs(t, err, apply.ErrDestinationContainsSource)
	assert.NoDirExists(t, s.ImagesDir)
}

func TestSettingsValidate(t *testing.T) {
	s := testSettings(t.TempDir())
	assert.NoError(t, s.Validate())

	for _, scale := range []int{0, -1, 65, 1 << 40} {
		s.PreviewScale = scale
		assert.Error(t, s.Validate(), "scale %d", scale)
	}

	s.PreviewScale = 64
	assert.NoError(t, s.Validate())
}
