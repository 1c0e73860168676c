package theme

import (
	"time"

	"github.com/bnema/darkswitch/internal/infrastructure/config"
)

// OptionsFromConfig maps the [switch] section onto Options. Store,
// Environment, OnChange and Clock are left for the host to fill.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	s := cfg.Switch
	opts.DefaultDark = s.DefaultDark
	opts.StorageKey = Coalesce(s.StorageKey, DefaultStorageKey)
	opts.SyncWithSystem = s.SyncWithSystem
	opts.TransitionDuration = msToDuration(s.TransitionDurationMs)
	opts.DisableTransition = s.TransitionDurationMs <= 0
	opts.ClassNameDark = Coalesce(s.ClassNameDark, DefaultClassNameDark)
	opts.ClassNameLight = Coalesce(s.ClassNameLight, DefaultClassNameLight)
	return opts
}

func msToDuration(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
