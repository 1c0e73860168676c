package colorscheme

import (
	"sync/atomic"

	"github.com/bnema/darkswitch/internal/infrastructure/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
// Update swaps the config after a reload.
type ConfigAdapter struct {
	cfg atomic.Pointer[config.Config]
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(cfg *config.Config) *ConfigAdapter {
	a := &ConfigAdapter{}
	a.cfg.Store(cfg)
	return a
}

// Update replaces the adapted config.
func (a *ConfigAdapter) Update(cfg *config.Config) {
	a.cfg.Store(cfg)
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	cfg := a.cfg.Load()
	if cfg == nil {
		return ""
	}
	return cfg.System.ColorScheme
}
