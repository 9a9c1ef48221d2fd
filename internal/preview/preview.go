// Package preview shows a catalog image magnified. The menu treats it as an
// injected, blocking capability: Show returns once the user dismissed the
// preview.
package preview

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	// DefaultScale is the magnification used when none is configured.
	DefaultScale = 8
	// MaxScale bounds the configurable magnification.
	MaxScale = 64
)

// Terminal is the terminal handed over to the preview while it runs.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (t Terminal) withDefaults() Terminal {
	if t.In == nil {
		t.In = os.Stdin
	}
	if t.Out == nil {
		t.Out = os.Stdout
	}
	if t.Err == nil {
		t.Err = os.Stderr
	}
	return t
}

// Previewer shows the image at path magnified by scale under title and
// blocks until the preview is closed.
type Previewer interface {
	Show(path string, scale int, title string, term Terminal) error
}

// CommandPreviewer opens the image with an external viewer program. The
// viewer decides on its own zoom; scale and title are not passed on.
type CommandPreviewer struct {
	Name string
	Args []string
}

// NewCommandPreviewer splits a command line such as "feh --zoom 800" into a
// previewer. The image path is appended as the last argument.
func NewCommandPreviewer(commandLine string) (*CommandPreviewer, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty viewer command")
	}
	return &CommandPreviewer{Name: fields[0], Args: fields[1:]}, nil
}

// Show runs the viewer and waits for it to exit.
func (c *CommandPreviewer) Show(path string, _ int, _ string, term Terminal) error {
	term = term.withDefaults()
	args := append(append([]string{}, c.Args...), path)
	cmd := exec.Command(c.Name, args...)
	cmd.Stdin = term.In
	cmd.Stdout = term.Out
	cmd.Stderr = term.Err
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %s: %w", c.Name, err)
	}
	return nil
}
