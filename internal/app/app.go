package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/capechanger/internal/apply"
	"github.com/kyaoi/capechanger/internal/preview"
	"github.com/kyaoi/capechanger/internal/ui"
)

// Run executes the Bubble Tea program for the image menu.
func Run(s Settings, log *slog.Logger) error {
	session, err := LoadInitialState(s, log)
	if err != nil {
		return err
	}

	previewer, err := newPreviewer(s.Viewer)
	if err != nil {
		return err
	}

	svc := ui.Services{
		Applier:   apply.NewEngine(session.Config, log),
		Selection: session.Selection,
		Language:  session.Language,
		Previewer: previewer,
		Log:       log,
	}
	return runProgram(session.State, svc)
}

func newPreviewer(viewer string) (preview.Previewer, error) {
	if viewer == "" {
		return preview.TerminalPreviewer{}, nil
	}
	return preview.NewCommandPreviewer(viewer)
}

func runProgram(state ui.State, svc ui.Services) error {
	program := tea.NewProgram(ui.NewModel(state, svc), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
