// Package catalog lists the candidate images of the source directory.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// ImagePattern selects the files that belong in the catalog. Names are
// lower-cased before matching.
const ImagePattern = "*.png"

var imageGlob = glob.MustCompile(ImagePattern)

// Entry is one displayable catalog item.
type Entry struct {
	Filename    string
	Rank        int
	DisplayName string
}

// List returns the images in dir sorted by filename. A missing or unreadable
// directory yields an empty catalog.
func List(dir string) []Entry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range dirEntries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !IsImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for i, name := range names {
		rank := i + 1
		entries = append(entries, Entry{
			Filename:    name,
			Rank:        rank,
			DisplayName: DisplayName(name, rank),
		})
	}
	return entries
}

// IsImage reports whether name has the recognised image extension.
func IsImage(name string) bool {
	return imageGlob.Match(strings.ToLower(name))
}

// DisplayName formats a catalog row label, e.g. "R2 cape" for cape.png at rank 2.
func DisplayName(filename string, rank int) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return fmt.Sprintf("R%d %s", rank, stem)
}

// IndexOf returns the position of filename in entries, or -1.
func IndexOf(entries []Entry, filename string) int {
	if filename == "" {
		return -1
	}
	for i, entry := range entries {
		if entry.Filename == filename {
			return i
		}
	}
	return -1
}
