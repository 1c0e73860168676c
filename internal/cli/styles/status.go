package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status view shows.
type StatusInfo struct {
	IsDark         bool
	SystemTheme    string
	SyncWithSystem bool
	Transitioning  bool
	Markers        []string
	StorageBackend string
	StoragePath    string
	MarkerFile     string
	Detectors      []DetectorLine
}

// DetectorLine is one row of the detector table.
type DetectorLine struct {
	Name        string
	Priority    int
	Available   bool
	OK          bool
	PrefersDark bool
}

// StatusRenderer renders the switch state.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a status renderer using the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// ModeBadge renders the active mode as a badge.
func (r *StatusRenderer) ModeBadge(isDark bool) string {
	label := "light"
	if isDark {
		label = "dark"
	}
	return r.theme.Badge.Render(ModeIcon(isDark) + " " + label)
}

// Render renders the full status block.
func (r *StatusRenderer) Render(info StatusInfo) string {
	t := r.theme
	row := func(icon, key, value string) string {
		return fmt.Sprintf("%s %s %s",
			lipgloss.NewStyle().Foreground(t.Accent).Render(icon),
			t.Subtle.Render(fmt.Sprintf("%-10s", key)),
			t.Normal.Render(value))
	}

	system := info.SystemTheme
	if system == "" {
		system = "not observed"
	}
	sync := "off"
	if info.SyncWithSystem {
		sync = "on"
	}
	markers := strings.Join(info.Markers, " ")
	if markers == "" {
		markers = "-"
	}

	lines := []string{
		t.Title.Render("darkswitch") + "  " + r.ModeBadge(info.IsDark),
		"",
		row(IconDesktop, "system", system),
		row(IconCheck, "sync", sync),
		row(IconConfig, "markers", markers),
		row(IconDatabase, "storage", storageLabel(info.StorageBackend, info.StoragePath)),
	}
	if info.MarkerFile != "" {
		lines = append(lines, row(IconConfig, "file", info.MarkerFile))
	}
	if info.Transitioning {
		lines = append(lines, row(IconClock, "state", t.WarningStyle.Render("transitioning")))
	}
	if len(info.Detectors) > 0 {
		lines = append(lines, "", t.Subtitle.Render("Detectors"))
		for _, d := range info.Detectors {
			lines = append(lines, r.detectorLine(d))
		}
	}
	return t.Box.Render(strings.Join(lines, "\n"))
}

func (r *StatusRenderer) detectorLine(d DetectorLine) string {
	t := r.theme
	var result string
	switch {
	case !d.Available:
		result = t.Subtle.Render("unavailable")
	case !d.OK:
		result = t.WarningStyle.Render("no answer")
	case d.PrefersDark:
		result = t.SuccessStyle.Render("dark")
	default:
		result = t.SuccessStyle.Render("light")
	}
	icon := t.SuccessStyle.Render(IconCheck)
	if !d.Available || !d.OK {
		icon = t.Subtle.Render(IconX)
	}
	return fmt.Sprintf("%s %-10s %s %s", icon, d.Name, t.Subtle.Render(fmt.Sprintf("%3d", d.Priority)), result)
}

func storageLabel(backend, path string) string {
	switch {
	case backend == "":
		return "none"
	case path == "":
		return backend
	default:
		return backend + " " + path
	}
}
