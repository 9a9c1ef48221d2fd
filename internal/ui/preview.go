package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/capechanger/internal/preview"
)

type previewClosedMsg struct {
	filename string
	err      error
}

// previewExec hands the terminal to a Previewer while Bubble Tea is
// suspended by tea.Exec.
type previewExec struct {
	previewer preview.Previewer
	path      string
	scale     int
	title     string
	term      preview.Terminal
}

func (p *previewExec) Run() error {
	return p.previewer.Show(p.path, p.scale, p.title, p.term)
}

func (p *previewExec) SetStdin(r io.Reader)  { p.term.In = r }
func (p *previewExec) SetStdout(w io.Writer) { p.term.Out = w }
func (p *previewExec) SetStderr(w io.Writer) { p.term.Err = w }

var _ tea.ExecCommand = (*previewExec)(nil)
