package colorscheme

import (
	"os"
	"sync"

	"github.com/muesli/termenv"

	"github.com/bnema/darkswitch/internal/infrastructure/env"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 50
)

// TerminalDetector asks the attached terminal for its background color.
// The answer is queried once; terminals do not announce later changes.
type TerminalDetector struct {
	interactive func() bool
	query       func() bool

	once sync.Once
	dark bool
}

// NewTerminalDetector creates a detector for the terminal on stdout.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		interactive: env.Interactive,
		query: func() bool {
			return termenv.NewOutput(os.Stdout).HasDarkBackground()
		},
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.interactive()
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.interactive() {
		return false, false
	}
	d.once.Do(func() {
		d.dark = d.query()
	})
	return d.dark, true
}
