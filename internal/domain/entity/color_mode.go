package entity

import (
	"fmt"
	"strings"
)

// Mode is the dark/light state managed by the dark switch.
type Mode bool

const (
	ModeLight Mode = false
	ModeDark  Mode = true
)

// ModeFromDark converts a "prefers dark" boolean into a Mode.
func ModeFromDark(dark bool) Mode {
	return Mode(dark)
}

// IsDark reports whether the mode is dark.
func (m Mode) IsDark() bool {
	return bool(m)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	return !m
}

// String returns "dark" or "light".
func (m Mode) String() string {
	if m {
		return "dark"
	}
	return "light"
}

// Serialize returns the persisted form of the mode: the literal text
// "true" for dark and "false" for light.
func (m Mode) Serialize() string {
	if m {
		return "true"
	}
	return "false"
}

// ParseStoredMode parses a persisted mode value.
// Only "true" and "false" (surrounding whitespace ignored) are accepted;
// anything else reports ok=false so callers fall back to their default.
func ParseStoredMode(raw string) (mode Mode, ok bool) {
	switch strings.TrimSpace(raw) {
	case "true":
		return ModeDark, true
	case "false":
		return ModeLight, true
	default:
		return ModeLight, false
	}
}

// ParseModeName parses user input such as "dark", "light", "on", "off",
// "true" or "false".
func ParseModeName(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark", "true", "on", "1", "prefer-dark":
		return ModeDark, nil
	case "light", "false", "off", "0", "prefer-light":
		return ModeLight, nil
	default:
		return ModeLight, fmt.Errorf("invalid mode %q: expected dark or light", name)
	}
}

// SystemTheme is the last observed ambient color scheme of the environment.
// The zero value means nothing has been observed yet.
type SystemTheme string

const (
	SystemThemeNone    SystemTheme = ""
	SystemThemeDark    SystemTheme = "dark"
	SystemThemeLight   SystemTheme = "light"
	SystemThemeUnknown SystemTheme = "unknown"
)

// SystemThemeFromReading converts a preference reading into a SystemTheme.
func SystemThemeFromReading(prefersDark, ok bool) SystemTheme {
	switch {
	case !ok:
		return SystemThemeUnknown
	case prefersDark:
		return SystemThemeDark
	default:
		return SystemThemeLight
	}
}

// IsObserved reports whether a reading has been recorded.
func (t SystemTheme) IsObserved() bool {
	return t != SystemThemeNone
}

// String returns a printable name, "none" for the zero value.
func (t SystemTheme) String() string {
	if t == SystemThemeNone {
		return "none"
	}
	return string(t)
}
