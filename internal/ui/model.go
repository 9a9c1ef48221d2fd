package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/capechanger/internal/locale"
	"github.com/kyaoi/capechanger/internal/menu"
	"github.com/kyaoi/capechanger/internal/preview"
)

const (
	rowPrefix     = "➤ "
	rowIndent     = 4
	chromeHeight  = 4
	minListHeight = 1
)

var logo = []string{
	" CCCC   A   PPP   EEEEE      CCCC H   H   A   N   N  GGGG EEEEE RRRR  ",
	"C      A A  P  P  E         C     H   H  A A  NN  N G     E     R   R ",
	"C     AAAAA PPP   EEE    -  C     HHHHH AAAAA N N N G  GG EEE   RRRR  ",
	"C     A   A P     E         C     H   H A   A N  NN G   G E     R  R  ",
	" CCCC A   A P     EEEEE      CCCC H   H A   A N   N  GGGG EEEEE R   R ",
}

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a")).
			Bold(true).
			PaddingLeft(2)
	rowPlain       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	rowHighlighted = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	rowApplied     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	rowBoth        = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bb9af7")).
			Bold(true)
	helpLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")).
			PaddingLeft(2)
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ece6a")).
		PaddingLeft(2)
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			PaddingLeft(2)
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
)

// Model implements the Bubble Tea program for the image menu. It maps keys
// to menu events and carries out the effects menu.Transition returns.
type Model struct {
	listVP   viewport.Model
	renderer *glamour.TermRenderer
	state    menu.State
	showHelp bool
	ready    bool
	width    int
	height   int

	sourceDir    string
	previewScale int
	svc          Services
	log          *slog.Logger
	exec         func(tea.ExecCommand, tea.ExecCallback) tea.Cmd
}

// NewModel constructs the menu model with the provided initial state.
func NewModel(state State, svc Services) *Model {
	log := svc.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	scale := state.PreviewScale
	if scale < 1 || scale > preview.MaxScale {
		scale = preview.DefaultScale
	}
	m := &Model{
		listVP:       viewport.New(0, 0),
		state:        state.Menu,
		sourceDir:    state.SourceDir,
		previewScale: scale,
		svc:          svc,
		log:          log,
		exec:         tea.Exec,
	}
	m.listVP.MouseWheelEnabled = false
	m.refreshList()
	return m
}

// Menu returns the current menu state.
func (m *Model) Menu() menu.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case previewClosedMsg:
		if msg.err != nil {
			m.log.Warn("preview failed", "file", msg.filename, "error", msg.err)
		}
		return m, m.dispatch(menu.PreviewClosed{Filename: msg.filename, Err: msg.err})

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q", "Q":
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, m.dispatch(menu.Quit{})
		case key.Matches(msg, keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, keys.Up):
			return m, m.dispatch(menu.MoveUp{})
		case key.Matches(msg, keys.Down):
			return m, m.dispatch(menu.MoveDown{})
		case key.Matches(msg, keys.Apply):
			return m, m.dispatch(menu.Confirm{})
		case key.Matches(msg, keys.Preview):
			return m, m.dispatch(menu.Preview{})
		case key.Matches(msg, keys.Language):
			return m, m.dispatch(menu.ToggleLanguage{})
		}
		return m, nil
	}
	return m, nil
}

// dispatch runs ev through the state machine and executes the resulting
// effects. Effects that complete synchronously feed their outcome back as
// further events before the next key is read.
func (m *Model) dispatch(ev menu.Event) tea.Cmd {
	var cmds []tea.Cmd
	queue := []menu.Event{ev}
	for len(queue) > 0 {
		var effects []menu.Effect
		m.state, effects = menu.Transition(m.state, queue[0])
		queue = queue[1:]

		for _, effect := range effects {
			next, cmd := m.execute(effect)
			if next != nil {
				queue = append(queue, next)
			}
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	m.refreshList()
	return tea.Batch(cmds...)
}

func (m *Model) execute(effect menu.Effect) (menu.Event, tea.Cmd) {
	switch effect := effect.(type) {
	case menu.ApplyImage:
		m.log.Info("applying image", "file", effect.Filename)
		err := m.svc.Applier.Apply(effect.Filename, m.sourceDir)
		if err != nil {
			m.log.Error("apply failed", "file", effect.Filename, "error", err)
		}
		return menu.ApplyFinished{Filename: effect.Filename, Err: err}, nil

	case menu.SaveSelection:
		err := m.svc.Selection.Save(effect.Filename)
		if err != nil {
			m.log.Error("could not save selection", "file", effect.Filename, "error", err)
		}
		return menu.SelectionSaved{Filename: effect.Filename, Err: err}, nil

	case menu.SwitchLanguage:
		lang, err := m.svc.Language.Toggle()
		if err != nil {
			m.log.Warn("could not save language", "lang", lang, "error", err)
		} else {
			m.log.Debug("language switched", "lang", lang)
		}
		return menu.LanguageChanged{Lang: lang, Err: err}, nil

	case menu.ShowPreview:
		return nil, m.previewCmd(effect)

	case menu.Exit:
		return nil, tea.Quit
	}
	return nil, nil
}

func (m *Model) previewCmd(effect menu.ShowPreview) tea.Cmd {
	if m.svc.Previewer == nil {
		return nil
	}
	filename := effect.Filename
	c := &previewExec{
		previewer: m.svc.Previewer,
		path:      filepath.Join(m.sourceDir, filename),
		scale:     m.previewScale,
		title:     m.svc.Language.Text(effect.Lang, locale.KeyPreviewTitle),
	}
	return m.exec(c, func(err error) tea.Msg {
		return previewClosedMsg{filename: filename, err: err}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		overlay := helpBoxStyle.Render(m.helpContent())
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	lang := m.state.Lang
	parts := []string{"", logoStyle.Render(strings.Join(logo, "\n")), ""}

	if m.state.Phase() == menu.PhaseEmpty {
		text := m.svc.Language.Format(lang, locale.KeyEmptyState, map[string]any{"Dir": m.sourceDir})
		parts = append(parts, helpLineStyle.Render(text))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if m.ready {
		parts = append(parts, m.listVP.View())
	} else {
		parts = append(parts, m.renderRows())
	}
	parts = append(parts, "", helpLineStyle.Render(m.svc.Language.Text(lang, locale.KeyHelp)))
	if status := m.statusLine(); status != "" {
		parts = append(parts, status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusLine() string {
	n := m.state.Notice
	lang := m.state.Lang
	data := map[string]any{"Name": n.Filename}
	if n.Err != nil {
		data["Err"] = n.Err.Error()
	}
	switch n.Kind {
	case menu.NoticeApplied:
		return okStyle.Render(m.svc.Language.Format(lang, locale.KeyApplied, data))
	case menu.NoticeApplyFailed:
		return errStyle.Render(m.svc.Language.Format(lang, locale.KeyApplyFailed, data))
	case menu.NoticeSelectionFailed:
		return errStyle.Render(m.svc.Language.Format(lang, locale.KeySelectionFailed, data))
	case menu.NoticeLanguageFailed:
		return errStyle.Render(m.svc.Language.Format(lang, locale.KeyLanguageFailed, data))
	case menu.NoticePreviewFailed:
		return errStyle.Render(m.svc.Language.Format(lang, locale.KeyPreviewFailed, data))
	}
	return ""
}

func (m *Model) helpContent() string {
	text := m.svc.Language.Text(m.state.Lang, locale.KeyHelpOverlay)
	if m.renderer == nil {
		return text
	}
	rendered, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}

func (m *Model) renderRows() string {
	var builder strings.Builder
	for i, entry := range m.state.Entries {
		label := rowPrefix + entry.DisplayName
		if m.width > rowIndent+1 {
			label = ansi.Truncate(label, m.width-rowIndent, "…")
		}
		builder.WriteString(strings.Repeat(" ", rowIndent))
		builder.WriteString(rowStyle(m.state.Emphasis(i)).Render(label))
		if i < len(m.state.Entries)-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

func rowStyle(e menu.Emphasis) lipgloss.Style {
	switch e {
	case menu.EmphasisHighlightedApplied:
		return rowBoth
	case menu.EmphasisApplied:
		return rowApplied
	case menu.EmphasisHighlighted:
		return rowHighlighted
	default:
		return rowPlain
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.ready = true

	m.listVP.Width = width
	m.listVP.Height = max(height-len(logo)-chromeHeight-2, minListHeight)

	renderer, err := newRenderer(max(width-helpBoxStyle.GetHorizontalFrameSize()-4, 20))
	if err != nil {
		m.log.Warn("help renderer unavailable", "error", err)
	} else {
		m.renderer = renderer
	}
	m.refreshList()
}

func (m *Model) refreshList() {
	m.listVP.SetContent(m.renderRows())
	m.ensureSelectionVisible()
}

func (m *Model) ensureSelectionVisible() {
	if len(m.state.Entries) == 0 || m.listVP.Height == 0 {
		return
	}
	if m.state.Cursor < m.listVP.YOffset {
		m.listVP.SetYOffset(m.state.Cursor)
		return
	}
	bottom := m.listVP.YOffset + m.listVP.Height - 1
	if m.state.Cursor > bottom {
		m.listVP.SetYOffset(m.state.Cursor - m.listVP.Height + 1)
	}
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.TokyoNightStyle),
		glamour.WithWordWrap(width),
	)
}

// Summary is a plain one-line description of the state, used for logging.
func Summary(s menu.State) string {
	entry, ok := s.Highlighted()
	if !ok {
		return fmt.Sprintf("entries=0 lang=%s", s.Lang)
	}
	return fmt.Sprintf("entries=%d cursor=%s applied=%q lang=%s", len(s.Entries), entry.Filename, s.Applied, s.Lang)
}
