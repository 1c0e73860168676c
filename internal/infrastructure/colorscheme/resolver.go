// Package colorscheme detects the desktop or terminal color scheme and
// exposes it as the ambient preference followed by the dark switch.
package colorscheme

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/darkswitch/internal/application/port"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme configuration.
type ConfigProvider interface {
	// GetColorScheme returns the configured color scheme preference.
	// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light"
	GetColorScheme() string
}

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// DetectorReport is the reading of a single detector.
type DetectorReport struct {
	Name        string
	Priority    int
	Available   bool
	PrefersDark bool
	OK          bool
}

// Resolver implements port.ColorSchemeResolver and port.PreferenceSource.
// It manages multiple detectors and respects config overrides.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

var (
	_ port.ColorSchemeResolver = (*Resolver)(nil)
	_ port.PreferenceSource    = (*Resolver)(nil)
)

// NewResolver creates a new color scheme resolver.
// The config provider is used to check for explicit user preferences.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config: config,
		current: port.ColorSchemePreference{
			PrefersDark: true,
			Source:      sourceFallback,
		},
	}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked()
}

// resolveLocked performs the resolution. Caller must hold at least a read lock.
func (r *Resolver) resolveLocked() port.ColorSchemePreference {
	if r.config != nil {
		switch strings.ToLower(strings.TrimSpace(r.config.GetColorScheme())) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
		}
	}

	// Detectors are kept sorted by priority.
	for _, detector := range r.detectors {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
	sort.SliceStable(r.detectors, func(i, j int) bool {
		return r.detectors[i].Priority() > r.detectors[j].Priority()
	})
}

// Detectors returns the registered detectors, highest priority first.
func (r *Resolver) Detectors() []port.ColorSchemeDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(out, r.detectors)
	return out
}

// Report queries every registered detector, including the ones the
// resolution would not reach.
func (r *Resolver) Report() []DetectorReport {
	detectors := r.Detectors()
	reports := make([]DetectorReport, 0, len(detectors))
	for _, d := range detectors {
		report := DetectorReport{
			Name:      d.Name(),
			Priority:  d.Priority(),
			Available: d.Available(),
		}
		if report.Available {
			report.PrefersDark, report.OK = d.Detect()
		}
		reports = append(reports, report)
	}
	return reports
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	newPref := r.resolveLocked()
	changed := newPref.PrefersDark != r.current.PrefersDark ||
		isFallback(newPref) != isFallback(r.current)
	r.current = newPref

	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}
	return newPref
}

// Current returns the preference recorded by the last Refresh or PrefersDark.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

// PrefersDark implements port.PreferenceSource. ok is false when no
// detector answered and only the dark fallback applies. The reading is
// recorded so the next Refresh only reports actual changes.
func (r *Resolver) PrefersDark() (prefersDark, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pref := r.resolveLocked()
	r.current = pref
	return pref.PrefersDark, !isFallback(pref)
}

// Subscribe implements port.PreferenceSource. Losing every detector
// reading is reported with ok false rather than as the dark fallback.
func (r *Resolver) Subscribe(fn func(prefersDark, ok bool)) func() {
	return r.OnChange(func(pref port.ColorSchemePreference) {
		fn(pref.PrefersDark, !isFallback(pref))
	})
}

func isFallback(pref port.ColorSchemePreference) bool {
	return pref.Source == sourceFallback
}
