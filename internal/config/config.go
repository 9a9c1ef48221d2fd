// Package config reads the two-line configuration resource that names the
// destination skin file and the directory it is written to.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrConfigMissing is returned when the configuration resource does not exist.
	ErrConfigMissing = errors.New("configuration file not found")
	// ErrConfigMalformed is returned when either of the two required lines is absent or blank.
	ErrConfigMalformed = errors.New("configuration file is malformed")
)

// Config is the destination the apply step writes to. It is immutable once loaded.
type Config struct {
	DestinationFilename string
	DestinationDir      string
}

// Load reads path. Line 1 is the destination filename and line 2 the
// destination directory; any further lines are ignored. No defaults are
// substituted for missing values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s (line 1: target file name, e.g. cape.png; line 2: target directory)", ErrConfigMissing, path)
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, string(data))
}

// Parse interprets the raw contents of a configuration resource. name is only
// used in error messages.
func Parse(name, content string) (Config, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	filename := lineAt(lines, 0)
	if filename == "" {
		return Config{}, fmt.Errorf("%w: %s: line 1 must contain the target file name (e.g. cape.png)", ErrConfigMalformed, name)
	}
	dir := lineAt(lines, 1)
	if dir == "" {
		return Config{}, fmt.Errorf("%w: %s: line 2 must contain the target directory", ErrConfigMalformed, name)
	}

	return Config{
		DestinationFilename: filename,
		DestinationDir:      dir,
	}, nil
}

func lineAt(lines []string, i int) string {
	if i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i])
}
