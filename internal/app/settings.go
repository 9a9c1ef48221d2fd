package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/kyaoi/capechanger/internal/preview"
)

// Settings locate the files the menu works with. They come from the
// environment and may be overridden by command-line flags.
type Settings struct {
	ConfigFile   string `env:"CAPECHANGER_CONFIG"         envDefault:"config.txt"`
	ImagesDir    string `env:"CAPECHANGER_IMAGES_DIR"     envDefault:"images"`
	StateFile    string `env:"CAPECHANGER_STATE_FILE"     envDefault:"state.json"`
	LanguageFile string `env:"CAPECHANGER_LANGUAGE_FILE"  envDefault:"language.json"`
	LogFile      string `env:"CAPECHANGER_LOG_FILE"       envDefault:"capechanger.log"`
	LogLevel     string `env:"CAPECHANGER_LOG_LEVEL"      envDefault:"info"`
	PreviewScale int    `env:"CAPECHANGER_PREVIEW_SCALE"  envDefault:"8"`
	Viewer       string `env:"CAPECHANGER_VIEWER"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	return env.ParseAs[Settings]()
}

// Validate rejects settings the menu cannot work with.
func (s Settings) Validate() error {
	if s.PreviewScale < 1 || s.PreviewScale > preview.MaxScale {
		return fmt.Errorf("preview scale %d out of range 1..%d", s.PreviewScale, preview.MaxScale)
	}
	return nil
}
