// Package theme implements the dark switch and the palettes styled by its
// marker classes.
package theme

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/darkswitch/internal/domain/validation"
	"github.com/bnema/darkswitch/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Main background color
	Surface        string // Elevated surfaces (cards, popups)
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary/disabled text
	Accent         string // Primary accent color (actions, highlights)
	Border         string // Border and divider lines
	// Status colors are not user-editable.
	Success     string
	Warning     string
	Destructive string
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#18181b",
		SurfaceVariant: "#27272a",
		Text:           "#fafafa",
		Muted:          "#a1a1aa",
		Accent:         "#4ade80",
		Border:         "#3f3f46",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#f4f4f5",
		SurfaceVariant: "#e4e4e7",
		Text:           "#18181b",
		Muted:          "#71717a",
		Accent:         "#22c55e",
		Border:         "#d4d4d8",
		Success:        "#22c55e",
		Warning:        "#f59e0b",
		Destructive:    "#dc2626",
	}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	defaults := DefaultLightPalette()
	if isDark {
		defaults = DefaultDarkPalette()
	}
	if cfg == nil {
		return defaults
	}

	return Palette{
		Background:     Coalesce(cfg.Background, defaults.Background),
		Surface:        Coalesce(cfg.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(cfg.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(cfg.Text, defaults.Text),
		Muted:          Coalesce(cfg.Muted, defaults.Muted),
		Accent:         Coalesce(cfg.Accent, defaults.Accent),
		Border:         Coalesce(cfg.Border, defaults.Border),
		Success:        defaults.Success,
		Warning:        defaults.Warning,
		Destructive:    defaults.Destructive,
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks the editable colors are hex values.
func (p Palette) Validate() error {
	errs := domainvalidation.ValidatePaletteHex("palette",
		domainvalidation.PaletteField{Name: "background", Value: p.Background},
		domainvalidation.PaletteField{Name: "surface", Value: p.Surface},
		domainvalidation.PaletteField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.PaletteField{Name: "text", Value: p.Text},
		domainvalidation.PaletteField{Name: "muted", Value: p.Muted},
		domainvalidation.PaletteField{Name: "accent", Value: p.Accent},
		domainvalidation.PaletteField{Name: "border", Value: p.Border},
	)
	if len(errs) > 0 {
		return fmt.Errorf("invalid palette: %s", strings.Join(errs, "; "))
	}
	return nil
}

// cssVars returns the custom property declarations of the palette, one
// per line, indented for a rule body.
func (p Palette) cssVars() string {
	vars := []struct{ name, value string }{
		{"background", p.Background},
		{"foreground", p.Text},
		{"surface", p.Surface},
		{"surface-variant", p.SurfaceVariant},
		{"muted", p.Muted},
		{"primary", p.Accent},
		{"primary-foreground", p.Background},
		{"border", p.Border},
		{"ring", p.Accent},
		{"success", p.Success},
		{"warning", p.Warning},
		{"destructive", p.Destructive},
	}

	var sb strings.Builder
	for _, v := range vars {
		sb.WriteString("  --" + v.name + ": " + v.value + ";\n")
	}
	return sb.String()
}
