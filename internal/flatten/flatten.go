// Package flatten copies a nested folder of downloaded images into one flat
// folder the catalog can list.
package flatten

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kyaoi/capechanger/internal/fsutil"
)

// Result summarises a flatten run.
type Result struct {
	Copied int
}

// TargetName returns the flat name of file found directly in directory dir:
// "<dir>_<file>.png".
func TargetName(dir, file string) string {
	return fmt.Sprintf("%s_%s.png", filepath.Base(dir), file)
}

// Run walks src recursively and copies every regular file into dst under
// TargetName. dst is created if needed; existing files with the same name
// are overwritten. dst itself is skipped when it lies inside src.
func Run(src, dst string, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	var res Result

	info, err := os.Stat(src)
	if err != nil {
		return res, err
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%s is not a directory", src)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return res, err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return res, err
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, err := filepath.Abs(path); err == nil && abs == absDst {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		target := filepath.Join(dst, TargetName(filepath.Dir(path), d.Name()))
		if err := fsutil.CopyFile(path, target); err != nil {
			return fmt.Errorf("copy %s: %w", path, err)
		}
		res.Copied++
		log.Info("copied", "from", path, "to", target)
		return nil
	})
	return res, err
}
