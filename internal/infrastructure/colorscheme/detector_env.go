package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "env"
	priorityEnv     = 20
)

// EnvDetector reads the color scheme from environment variables:
// DARKSWITCH_COLOR_SCHEME first, then GTK_THEME (dark if the theme name
// contains "dark"), then COLORFGBG as set by rxvt-style terminals.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("DARKSWITCH_COLOR_SCHEME") != "" ||
		d.getenv("GTK_THEME") != "" ||
		d.getenv("COLORFGBG") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(d.getenv("DARKSWITCH_COLOR_SCHEME"))) {
	case "dark", "prefer-dark":
		return true, true
	case "light", "prefer-light":
		return false, true
	}

	if gtkTheme := d.getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
	}

	return parseColorFGBG(d.getenv("COLORFGBG"))
}

// parseColorFGBG reads "fg;bg" or "fg;default;bg". Background colors 0-6
// and 8 are the dark half of the ANSI palette.
func parseColorFGBG(value string) (prefersDark, ok bool) {
	if value == "" {
		return false, false
	}
	parts := strings.Split(value, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])
	switch bg {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true, true
	case "7", "9", "10", "11", "12", "13", "14", "15":
		return false, true
	default:
		return false, false
	}
}
