// Package menu is the selection state machine. Transition is pure: it never
// touches the file system or the terminal, it only returns the effects the
// caller has to carry out and feed back as events.
package menu

import (
	"github.com/kyaoi/capechanger/internal/catalog"
	"github.com/kyaoi/capechanger/internal/locale"
)

// Phase is the top-level state of the menu.
type Phase int

const (
	// PhaseEmpty means the catalog has no entries; only Quit is accepted.
	PhaseEmpty Phase = iota
	PhaseBrowsing
)

// Emphasis is the visual treatment of one catalog row.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisHighlighted
	EmphasisApplied
	EmphasisHighlightedApplied
)

// NoticeKind classifies the transient status line.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeApplied
	NoticeApplyFailed
	NoticeSelectionFailed
	NoticeLanguageFailed
	NoticePreviewFailed
)

// Notice is the outcome of the last action, shown until the next key.
type Notice struct {
	Kind     NoticeKind
	Filename string
	Err      error
}

// State is everything the menu renders from.
type State struct {
	Entries []catalog.Entry
	Cursor  int
	Applied string
	Lang    locale.Lang
	Notice  Notice
	Done    bool
}

// New builds the initial state. The cursor starts on the applied entry when
// it is still in the catalog, otherwise on the first entry.
func New(entries []catalog.Entry, applied string, lang locale.Lang) State {
	cursor := catalog.IndexOf(entries, applied)
	if cursor < 0 {
		cursor = 0
	}
	return State{
		Entries: entries,
		Cursor:  cursor,
		Applied: applied,
		Lang:    lang,
	}
}

// Phase reports whether there is anything to browse.
func (s State) Phase() Phase {
	if len(s.Entries) == 0 {
		return PhaseEmpty
	}
	return PhaseBrowsing
}

// Highlighted returns the entry under the cursor.
func (s State) Highlighted() (catalog.Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return catalog.Entry{}, false
	}
	return s.Entries[s.Cursor], true
}

// Emphasis returns the treatment of row i. Highlighted-and-applied wins over
// applied, which wins over highlighted.
func (s State) Emphasis(i int) Emphasis {
	if i < 0 || i >= len(s.Entries) {
		return EmphasisNone
	}
	applied := s.Applied != "" && s.Entries[i].Filename == s.Applied
	highlighted := i == s.Cursor
	switch {
	case applied && highlighted:
		return EmphasisHighlightedApplied
	case applied:
		return EmphasisApplied
	case highlighted:
		return EmphasisHighlighted
	default:
		return EmphasisNone
	}
}

// Transition applies ev to s.
func Transition(s State, ev Event) (State, []Effect) {
	if s.Done {
		return s, nil
	}

	if _, ok := ev.(Quit); ok {
		s.Done = true
		return s, []Effect{Exit{}}
	}
	if s.Phase() == PhaseEmpty {
		return s, nil
	}

	switch ev := ev.(type) {
	case MoveUp:
		s.Notice = Notice{}
		s.Cursor = wrap(s.Cursor-1, len(s.Entries))
		return s, nil

	case MoveDown:
		s.Notice = Notice{}
		s.Cursor = wrap(s.Cursor+1, len(s.Entries))
		return s, nil

	case Confirm:
		s.Notice = Notice{}
		entry, ok := s.Highlighted()
		if !ok {
			return s, nil
		}
		return s, []Effect{ApplyImage{Filename: entry.Filename}}

	case ApplyFinished:
		if ev.Err != nil {
			s.Notice = Notice{Kind: NoticeApplyFailed, Filename: ev.Filename, Err: ev.Err}
			return s, nil
		}
		s.Applied = ev.Filename
		s.Notice = Notice{Kind: NoticeApplied, Filename: ev.Filename}
		return s, []Effect{SaveSelection{Filename: ev.Filename}}

	case SelectionSaved:
		if ev.Err != nil {
			s.Notice = Notice{Kind: NoticeSelectionFailed, Filename: ev.Filename, Err: ev.Err}
		}
		return s, nil

	case Preview:
		s.Notice = Notice{}
		entry, ok := s.Highlighted()
		if !ok {
			return s, nil
		}
		return s, []Effect{ShowPreview{Filename: entry.Filename, Lang: s.Lang}}

	case PreviewClosed:
		if ev.Err != nil {
			s.Notice = Notice{Kind: NoticePreviewFailed, Filename: ev.Filename, Err: ev.Err}
		}
		return s, nil

	case ToggleLanguage:
		s.Notice = Notice{}
		return s, []Effect{SwitchLanguage{}}

	case LanguageChanged:
		s.Lang = ev.Lang
		if ev.Err != nil {
			s.Notice = Notice{Kind: NoticeLanguageFailed, Err: ev.Err}
		}
		return s, nil
	}
	return s, nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
