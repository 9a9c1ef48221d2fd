package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Messages is the closed translation table: every language in Languages has
// a message for every key in Keys.
type Messages struct {
	localizers map[Lang]*i18n.Localizer
}

// NewMessages loads the embedded message files and verifies the table is
// complete. A missing or empty message is reported as an error instead of
// silently falling back to another language.
func NewMessages() (*Messages, error) {
	return newMessages(localeFiles, "locales")
}

func newMessages(fsys fs.FS, dir string) (*Messages, error) {
	bundle := i18n.NewBundle(language.MustParse(string(Default)))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read message file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse message file %s: %w", name, err)
		}
	}

	m := &Messages{localizers: make(map[Lang]*i18n.Localizer, len(Languages))}
	for _, lang := range Languages {
		localizer := i18n.NewLocalizer(bundle, string(lang))
		for _, key := range Keys {
			text, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: string(key)})
			if err != nil {
				return nil, fmt.Errorf("language %s: message %q: %w", lang, key, err)
			}
			if tag.String() != string(lang) {
				return nil, fmt.Errorf("language %s: message %q is not translated", lang, key)
			}
			if text == "" {
				return nil, fmt.Errorf("language %s: message %q is empty", lang, key)
			}
		}
		m.localizers[lang] = localizer
	}
	return m, nil
}

// Text returns the message for key in lang. Unknown languages use Default.
func (m *Messages) Text(lang Lang, key Key) string {
	return m.Format(lang, key, nil)
}

// Format returns the message for key in lang with data substituted into its
// template placeholders.
func (m *Messages) Format(lang Lang, key Key, data map[string]any) string {
	localizer, ok := m.localizers[lang]
	if !ok {
		localizer = m.localizers[Default]
	}
	text, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: data,
	})
	if err != nil {
		return string(key)
	}
	return text
}
