package theme

import (
	"context"
	"sync"

	"github.com/bnema/darkswitch/internal/infrastructure/config"
	"github.com/bnema/darkswitch/internal/logging"
)

// DefaultTransitionClass is the class hosts add while Transitioning.
const DefaultTransitionClass = "theme-transition"

// Manager holds the palettes and marker class names from configuration
// and renders the stylesheet. It is safe for concurrent use.
type Manager struct {
	mu                 sync.RWMutex
	lightPalette       Palette
	darkPalette        Palette
	classLight         string
	classDark          string
	transitionDuration int
}

// NewManager creates a new theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	m := &Manager{}
	m.apply(cfg)

	logging.FromContext(ctx).Debug().
		Str("class_light", m.classLight).
		Str("class_dark", m.classDark).
		Msg("theme manager initialized")
	return m
}

func (m *Manager) apply(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m.lightPalette = PaletteFromConfig(&cfg.Appearance.LightPalette, false)
	m.darkPalette = PaletteFromConfig(&cfg.Appearance.DarkPalette, true)
	m.classLight = Coalesce(cfg.Switch.ClassNameLight, DefaultClassNameLight)
	m.classDark = Coalesce(cfg.Switch.ClassNameDark, DefaultClassNameDark)
	m.transitionDuration = cfg.Switch.TransitionDurationMs
}

// Palette returns the palette for the given mode.
func (m *Manager) Palette(isDark bool) Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if isDark {
		return m.darkPalette
	}
	return m.lightPalette
}

// ClassName returns the marker class for the given mode.
func (m *Manager) ClassName(isDark bool) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if isDark {
		return m.classDark
	}
	return m.classLight
}

// Stylesheet renders the CSS for both marker classes, followed by the
// transition rule when a transition duration is configured.
func (m *Manager) Stylesheet() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	css := Stylesheet(m.classLight, m.classDark, m.lightPalette, m.darkPalette)
	if transition := TransitionCSS(DefaultTransitionClass, msToDuration(m.transitionDuration)); transition != "" {
		css += "\n" + transition
	}
	return css
}

// UpdateFromConfig replaces palettes and class names after a config reload.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}

	m.mu.Lock()
	m.apply(cfg)
	m.mu.Unlock()

	logging.FromContext(ctx).Info().Msg("theme manager updated from config")
}
