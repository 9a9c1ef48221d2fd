package ui

import (
	"log/slog"

	"github.com/kyaoi/capechanger/internal/locale"
	"github.com/kyaoi/capechanger/internal/menu"
	"github.com/kyaoi/capechanger/internal/preview"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Menu         menu.State
	SourceDir    string
	PreviewScale int
}

// Applier copies a catalog image into the destination directory.
type Applier interface {
	Apply(filename, sourceDir string) error
}

// SelectionSaver persists the applied filename.
type SelectionSaver interface {
	Save(filename string) error
}

// Localizer supplies UI text and switches the persisted language.
type Localizer interface {
	Toggle() (locale.Lang, error)
	Text(lang locale.Lang, key locale.Key) string
	Format(lang locale.Lang, key locale.Key, data map[string]any) string
}

// Services are the collaborators that carry out menu effects.
type Services struct {
	Applier   Applier
	Selection SelectionSaver
	Language  Localizer
	Previewer preview.Previewer
	Log       *slog.Logger
}
