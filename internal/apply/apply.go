// Package apply replaces the contents of the destination directory with one
// chosen catalog image.
package apply

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kyaoi/capechanger/internal/config"
	"github.com/kyaoi/capechanger/internal/fsutil"
)

// ErrDestinationContainsSource is returned when clearing the destination
// directory would also delete the catalog images.
var ErrDestinationContainsSource = errors.New("destination directory contains the images directory")

// Op identifies the step of an apply that failed.
type Op string

const (
	OpCheck Op = "check"
	OpMkdir Op = "mkdir"
	OpCopy  Op = "copy"
)

// Error is returned when an apply could not place the selected image in the
// destination directory.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("apply %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Engine performs apply operations against a fixed destination.
type Engine struct {
	cfg config.Config
	log *slog.Logger
}

// NewEngine returns an engine writing to cfg's destination. A nil logger
// discards removal warnings.
func NewEngine(cfg config.Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg, log: log}
}

// Apply clears the destination directory and copies sourceDir/filename into
// it under the configured destination filename.
//
// Entries that cannot be removed are logged and skipped. A stale file that
// survives this way stays next to the new one, so a locked destination can
// end up with more than one file.
func (e *Engine) Apply(filename, sourceDir string) error {
	dir := e.cfg.DestinationDir
	if err := CheckDestination(dir, sourceDir); err != nil {
		return &Error{Op: OpCheck, Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Op: OpMkdir, Path: dir, Err: err}
	}

	e.clear(dir)

	src := filepath.Join(sourceDir, filename)
	dst := filepath.Join(dir, e.cfg.DestinationFilename)
	if err := fsutil.CopyFile(src, dst); err != nil {
		return &Error{Op: OpCopy, Path: src, Err: err}
	}

	e.log.Info("applied image", "source", src, "destination", dst)
	return nil
}

// CheckDestination refuses a destination directory that is the source
// directory or one of its ancestors.
func CheckDestination(destDir, sourceDir string) error {
	dest, err := filepath.Abs(destDir)
	if err != nil {
		return err
	}
	source, err := filepath.Abs(sourceDir)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(dest, source)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: %s", ErrDestinationContainsSource, dest)
	}
	return nil
}

func (e *Engine) clear(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		e.log.Warn("could not list destination", "dir", dir, "error", err)
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			e.log.Warn("could not remove destination entry", "path", path, "error", err)
		}
	}
}
