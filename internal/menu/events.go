package menu

import "github.com/kyaoi/capechanger/internal/locale"

// Event is an input to Transition: a key action or the result of an effect.
type Event interface {
	isEvent()
}

type (
	MoveUp         struct{}
	MoveDown       struct{}
	Confirm        struct{}
	Preview        struct{}
	ToggleLanguage struct{}
	Quit           struct{}

	// ApplyFinished reports the outcome of an ApplyImage effect.
	ApplyFinished struct {
		Filename string
		Err      error
	}
	// SelectionSaved reports the outcome of a SaveSelection effect.
	SelectionSaved struct {
		Filename string
		Err      error
	}
	// PreviewClosed is sent once the modal preview has been dismissed.
	PreviewClosed struct {
		Filename string
		Err      error
	}
	// LanguageChanged carries the language now in effect. Err is set when
	// the preference could not be persisted.
	LanguageChanged struct {
		Lang locale.Lang
		Err  error
	}
)

func (MoveUp) isEvent()          {}
func (MoveDown) isEvent()        {}
func (Confirm) isEvent()         {}
func (Preview) isEvent()         {}
func (ToggleLanguage) isEvent()  {}
func (Quit) isEvent()            {}
func (ApplyFinished) isEvent()   {}
func (SelectionSaved) isEvent()  {}
func (PreviewClosed) isEvent()   {}
func (LanguageChanged) isEvent() {}

// Effect is a side effect requested by Transition.
type Effect interface {
	isEffect()
}

type (
	// ApplyImage copies Filename into the destination directory.
	ApplyImage struct {
		Filename string
	}
	// SaveSelection persists Filename as the applied selection.
	SaveSelection struct {
		Filename string
	}
	// ShowPreview opens the modal magnified preview of Filename.
	ShowPreview struct {
		Filename string
		Lang     locale.Lang
	}
	// SwitchLanguage advances and persists the language preference.
	SwitchLanguage struct{}
	// Exit ends the interactive loop.
	Exit struct{}
)

func (ApplyImage) isEffect()     {}
func (SaveSelection) isEffect()  {}
func (ShowPreview) isEffect()    {}
func (SwitchLanguage) isEffect() {}
func (Exit) isEffect()           {}
