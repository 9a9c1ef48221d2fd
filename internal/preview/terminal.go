package preview

import (
	"fmt"
	"image"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7"))
	footerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
)

// TerminalPreviewer draws the image inside the terminal with half-block
// characters. The requested scale is reduced until the image fits the
// window; anything larger can be scrolled.
type TerminalPreviewer struct{}

// Show runs a full-screen viewer until q, esc, enter or v is pressed.
func (TerminalPreviewer) Show(path string, scale int, title string, term Terminal) error {
	img, err := Load(path)
	if err != nil {
		return err
	}
	term = term.withDefaults()
	program := tea.NewProgram(
		newViewer(img, scale, title),
		tea.WithInput(term.In),
		tea.WithOutput(term.Out),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

type viewer struct {
	vp        viewport.Model
	img       image.Image
	requested int
	scale     int
	title     string
	ready     bool
}

func newViewer(img image.Image, scale int, title string) *viewer {
	return &viewer{
		vp:        viewport.New(0, 0),
		img:       img,
		requested: scale,
		title:     title,
	}
}

func (v *viewer) Init() tea.Cmd {
	return nil
}

func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "esc", "enter", "v", "V", "ctrl+c":
			return v, tea.Quit
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *viewer) resize(width, height int) {
	bodyHeight := max(height-2, 1)
	v.vp.Width = width
	v.vp.Height = bodyHeight

	b := v.img.Bounds()
	scale := FitScale(b.Dx(), b.Dy(), v.requested, width, bodyHeight*2)
	if !v.ready || scale != v.scale {
		v.scale = scale
		v.vp.SetContent(HalfBlocks(Magnify(v.img, scale)))
	}
	v.ready = true
}

func (v *viewer) View() string {
	if !v.ready {
		return ""
	}
	b := v.img.Bounds()
	footer := fmt.Sprintf("%dx%d  x%d", b.Dx(), b.Dy(), v.scale)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(v.title),
		v.vp.View(),
		footerStyle.Render(footer),
	)
}
