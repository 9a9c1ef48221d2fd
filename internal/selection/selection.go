// Package selection persists which catalog image was last applied.
package selection

import (
	"encoding/json"
	"fmt"
	"os"
)

type record struct {
	Selected *string `json:"selected"`
}

// Store reads and writes the selection record at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store backed by path. The file need not exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the applied filename. A missing, unreadable or corrupt
// record reports ok=false.
func (s *Store) Load() (filename string, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false
	}
	if rec.Selected == nil || *rec.Selected == "" {
		return "", false
	}
	return *rec.Selected, true
}

// Save overwrites the record. Callers must only save after the image was
// actually applied.
func (s *Store) Save(filename string) error {
	data, err := json.Marshal(record{Selected: &filename})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}
