package config

const (
	defaultStorageKey           = "dark-mode"
	defaultTransitionDurationMs = 300
	defaultClassNameDark        = "dark"
	defaultClassNameLight       = "light"

	defaultPollIntervalMs = 10000

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for darkswitch.
func DefaultConfig() *Config {
	return &Config{
		Switch: SwitchConfig{
			DefaultDark:          false,
			StorageKey:           defaultStorageKey,
			SyncWithSystem:       false,
			TransitionDurationMs: defaultTransitionDurationMs,
			ClassNameDark:        defaultClassNameDark,
			ClassNameLight:       defaultClassNameLight,
		},
		Storage: StorageConfig{
			Backend: StorageJSON,
			// Path is resolved in Load()
		},
		System: SystemConfig{
			ColorScheme:    ColorSchemeDefault,
			PollIntervalMs: defaultPollIntervalMs,
		},
		Appearance: AppearanceConfig{
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#22c55e",
				Border:         "#d4d4d8",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#4ade80",
				Border:         "#3f3f46",
			},
		},
		Logging: LoggingConfig{
			Level:         "warn",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultLogMaxAgeDays,
			Compress:      true,
		},
	}
}
