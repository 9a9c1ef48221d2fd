package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kyaoi/capechanger/internal/apply"
	"github.com/kyaoi/capechanger/internal/catalog"
	"github.com/kyaoi/capechanger/internal/config"
	"github.com/kyaoi/capechanger/internal/locale"
	"github.com/kyaoi/capechanger/internal/menu"
	"github.com/kyaoi/capechanger/internal/selection"
	"github.com/kyaoi/capechanger/internal/ui"
)

// Session is everything prepared before the menu starts.
type Session struct {
	Config    config.Config
	State     ui.State
	Selection *selection.Store
	Language  *locale.Store
}

// LoadInitialState validates the configuration and prepares the menu state.
// The configuration is checked before anything else touches the file
// system, so a missing or malformed file aborts without side effects.
func LoadInitialState(s Settings, log *slog.Logger) (Session, error) {
	cfg, err := config.Load(s.ConfigFile)
	if err != nil {
		return Session{}, err
	}

	if err := apply.CheckDestination(cfg.DestinationDir, s.ImagesDir); err != nil {
		return Session{}, err
	}

	if err := os.MkdirAll(s.ImagesDir, 0o755); err != nil {
		return Session{}, fmt.Errorf("create images directory: %w", err)
	}
	if err := os.MkdirAll(cfg.DestinationDir, 0o755); err != nil {
		return Session{}, fmt.Errorf("create destination directory: %w", err)
	}

	language, err := locale.NewStore(s.LanguageFile)
	if err != nil {
		return Session{}, err
	}

	entries := catalog.List(s.ImagesDir)
	sel := selection.NewStore(s.StateFile)
	applied, ok := sel.Load()
	if ok && catalog.IndexOf(entries, applied) < 0 {
		log.Info("applied image is no longer in the catalog", "file", applied)
	}

	state := menu.New(entries, applied, language.Current())
	log.Info("session loaded",
		"images", s.ImagesDir,
		"destination", cfg.DestinationDir,
		"target", cfg.DestinationFilename,
		"state", ui.Summary(state),
	)

	return Session{
		Config: cfg,
		State: ui.State{
			Menu:         state,
			SourceDir:    s.ImagesDir,
			PreviewScale: s.PreviewScale,
		},
		Selection: sel,
		Language:  language,
	}, nil
}
