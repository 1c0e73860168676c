package colorscheme

import (
	"context"
	"fmt"

	"github.com/rymdport/portal/settings"

	"github.com/bnema/darkswitch/internal/infrastructure/env"
	"github.com/bnema/darkswitch/internal/logging"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 100

	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"
)

// Values of org.freedesktop.appearance color-scheme.
const (
	portalNoPreference uint32 = 0
	portalPreferDark   uint32 = 1
	portalPreferLight  uint32 = 2
)

// PortalDetector reads the color scheme from the XDG desktop portal
// settings interface.
type PortalDetector struct {
	hasBus   func() bool
	readOne  func(namespace, key string) (any, error)
	onChange func(callback func(settings.Changed)) error
}

// NewPortalDetector creates a detector backed by the session bus.
func NewPortalDetector() *PortalDetector {
	return &PortalDetector{
		hasBus:   env.HasSessionBus,
		readOne:  settings.ReadOne,
		onChange: settings.OnSignalSettingChanged,
	}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

// Available implements port.ColorSchemeDetector.
func (d *PortalDetector) Available() bool {
	return d.hasBus()
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	value, err := d.readOne(appearanceNamespace, colorSchemeKey)
	if err != nil {
		return false, false
	}
	return portalScheme(value)
}

// Watch implements port.ColorSchemeWatcher. The portal signal loop cannot
// be cancelled; it is abandoned when ctx is done.
func (d *PortalDetector) Watch(ctx context.Context, notify func()) error {
	log := logging.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.onChange(func(changed settings.Changed) {
			if changed.Namespace != appearanceNamespace || changed.Key != colorSchemeKey {
				return
			}
			if ctx.Err() != nil {
				return
			}
			log.Debug().Interface("value", changed.Value).Msg("portal color-scheme changed")
			notify()
		})
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("portal settings signal: %w", err)
		}
		return nil
	}
}

// portalScheme converts a color-scheme value. The portal wraps it in a
// uint32; 0 means no preference.
func portalScheme(value any) (prefersDark, ok bool) {
	var scheme uint32
	switch v := value.(type) {
	case uint32:
		scheme = v
	case int32:
		scheme = uint32(v)
	case int:
		scheme = uint32(v)
	default:
		return false, false
	}

	switch scheme {
	case portalPreferDark:
		return true, true
	case portalPreferLight:
		return false, true
	case portalNoPreference:
		return false, false
	default:
		return false, false
	}
}
