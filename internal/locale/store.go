// Package locale holds the UI text table and the persisted language
// preference.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
)

// Lang is a UI language code.
type Lang string

const (
	English Lang = "en"
	German  Lang = "de"

	// Default is used whenever no valid preference is stored.
	Default = English
)

// Languages is the fixed toggle order.
var Languages = []Lang{English, German}

// Key names one entry of the message table.
type Key string

const (
	KeyHelp            Key = "help"
	KeyEmptyState      Key = "empty_state"
	KeyPreviewTitle    Key = "preview_title"
	KeyApplied         Key = "applied"
	KeyApplyFailed     Key = "apply_failed"
	KeyLanguageFailed  Key = "language_failed"
	KeySelectionFailed Key = "selection_failed"
	KeyPreviewFailed   Key = "preview_failed"
	KeyHelpOverlay     Key = "help_overlay"
)

// Keys lists every key each language must define.
var Keys = []Key{
	KeyHelp,
	KeyEmptyState,
	KeyPreviewTitle,
	KeyApplied,
	KeyApplyFailed,
	KeyLanguageFailed,
	KeySelectionFailed,
	KeyPreviewFailed,
	KeyHelpOverlay,
}

// Parse reports whether code is one of Languages.
func Parse(code string) (Lang, bool) {
	for _, lang := range Languages {
		if string(lang) == code {
			return lang, true
		}
	}
	return "", false
}

// Next returns the language after lang in the toggle order.
func Next(lang Lang) Lang {
	for i, l := range Languages {
		if l == lang {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Default
}

type preference struct {
	Lang string `json:"lang"`
}

// Store tracks the current language and persists it to a small JSON file.
type Store struct {
	*Messages

	path    string
	current Lang
}

// NewStore builds the message table and reads the stored preference from
// path. The only possible error is an incomplete message table.
func NewStore(path string) (*Store, error) {
	messages, err := NewMessages()
	if err != nil {
		return nil, err
	}
	return &Store{
		Messages: messages,
		path:     path,
		current:  loadPreference(path),
	}, nil
}

// Current returns the active language.
func (s *Store) Current() Lang {
	return s.current
}

// Toggle switches to the next language and persists it. The switch takes
// effect even when writing the preference fails.
func (s *Store) Toggle() (Lang, error) {
	s.current = Next(s.current)
	if err := savePreference(s.path, s.current); err != nil {
		return s.current, err
	}
	return s.current, nil
}

func loadPreference(path string) Lang {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default
	}
	var pref preference
	if err := json.Unmarshal(data, &pref); err != nil {
		return Default
	}
	lang, ok := Parse(pref.Lang)
	if !ok {
		return Default
	}
	return lang
}

func savePreference(path string, lang Lang) error {
	data, err := json.Marshal(preference{Lang: string(lang)})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write language preference: %w", err)
	}
	return nil
}
