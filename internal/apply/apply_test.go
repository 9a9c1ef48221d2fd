package apply

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/capechanger/internal/config"
)

type fixture struct {
	source string
	dest   string
	engine *Engine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	source := filepath.Join(root, "images")
	dest := filepath.Join(root, "skins", "87")
	require.NoError(t, os.MkdirAll(source, 0o755))
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(source, name), []byte("content of "+name), 0o644))
	}
	cfg := config.Config{DestinationFilename: "cape.png", DestinationDir: dest}
	return fixture{source: source, dest: dest, engine: NewEngine(cfg, nil)}
}

func (f fixture) destNames(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.dest)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestApplyCreatesDestination(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Apply("b.png", f.source))

	assert.Equal(t, []string{"cape.png"}, f.destNames(t))
	got, err := os.ReadFile(filepath.Join(f.dest, "cape.png"))
	require.NoError(t, err)
	assert.Equal(t, "content of b.png", string(got))
}

func TestApplyRemovesStaleEntries(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(f.dest, "old-dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dest, "stale.png"), []byte("stale"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.dest, "old-dir", "x"), []byte("x"), 0o644))

	require.NoError(t, f.engine.Apply("a.png", f.source))

	assert.Equal(t, []string{"cape.png"}, f.destNames(t))
	assert.NoFileExists(t, filepath.Join(f.dest, "stale.png"))
}

func TestApplyTwice(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Apply("a.png", f.source))
	require.NoError(t, f.engine.Apply("c.png", f.source))

	assert.Equal(t, []string{"cape.png"}, f.destNames(t))
	got, err := os.ReadFile(filepath.Join(f.dest, "cape.png"))
	require.NoError(t, err)
	assert.Equal(t, "content of c.png", string(got))
}

func TestApplyMissingSource(t *testing.T) {
	f := newFixture(t)

	err := f.engine.Apply("gone.png", f.source)
	require.Error(t, err)

	var applyErr *Error
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, OpCopy, applyErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyUncreatableDestination(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	engine := NewEngine(config.Config{DestinationFilename: "cape.png", DestinationDir: filepath.Join(blocker, "sub")}, nil)
	err := engine.Apply("a.png", f.source)

	var applyErr *Error
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, OpMkdir, applyErr.Op)
}

func TestCheckDestination(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "images")

	cases := []struct {
		name    string
		dest    string
		wantErr bool
	}{
		{"same directory", images, true},
		{"same directory, unclean path", filepath.Join(images, "sub", ".."), true},
		{"parent of source", root, true},
		{"sibling", filepath.Join(root, "skins"), false},
		{"inside source", filepath.Join(images, "out"), false},
		{"sibling with common prefix", filepath.Join(root, "images2"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDestination(tc.dest, images)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrDestinationContainsSource)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyRefusesSourceAsDestination(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(config.Config{DestinationFilename: "cape.png", DestinationDir: f.source}, nil)

	err := engine.Apply("a.png", f.source)

	var applyErr *Error
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, OpCheck, applyErr.Op)
	assert.ErrorIs(t, err, ErrDestinationContainsSource)

	entries, err := os.ReadDir(f.source)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "catalog images are left untouched")
}
