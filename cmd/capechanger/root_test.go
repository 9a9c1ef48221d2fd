package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/capechanger/internal/config"
)

func TestRootFailsWithoutConfig(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CAPECHANGER_LOG_FILE", filepath.Join(root, "capechanger.log"))
	t.Setenv("CAPECHANGER_IMAGES_DIR", filepath.Join(root, "images"))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(root, "config.txt")})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrConfigMissing)
	assert.NoDirExists(t, filepath.Join(root, "images"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written when the configuration is missing")
}

func TestRootRejectsScaleOutOfRange(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CAPECHANGER_LOG_FILE", filepath.Join(root, "capechanger.log"))

	for _, scale := range []string{"0", "65"} {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--config", filepath.Join(root, "config.txt"), "--scale", scale})
		cmd.SetOut(&bytes.Buffer{})

		err := cmd.Execute()
		require.Error(t, err, "scale %s", scale)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestFlattenCommand(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "downloads")
	dst := filepath.Join(root, "images")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "red"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "red", "cape"), []byte("red"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"flatten", src, dst, "--log-level", "error"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dst, "red_cape.png"))
	assert.Contains(t, out.String(), "1 files copied")
}
