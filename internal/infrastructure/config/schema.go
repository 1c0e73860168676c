package config

// Config is the darkswitch configuration file.
type Config struct {
	Switch     SwitchConfig     `mapstructure:"switch" toml:"switch" json:"switch"`
	Storage    StorageConfig    `mapstructure:"storage" toml:"storage" json:"storage"`
	System     SystemConfig     `mapstructure:"system" toml:"system" json:"system"`
	Marker     MarkerConfig     `mapstructure:"marker" toml:"marker" json:"marker"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	UI         UIConfig         `mapstructure:"ui" toml:"ui" json:"ui"`
}

// SwitchConfig holds the dark switch options.
type SwitchConfig struct {
	// DefaultDark is used when nothing is stored and system sync is off.
	DefaultDark bool   `mapstructure:"default_dark" toml:"default_dark" json:"default_dark"`
	StorageKey  string `mapstructure:"storage_key" toml:"storage_key" json:"storage_key"`
	// SyncWithSystem makes the system color scheme win over stored values.
	SyncWithSystem bool `mapstructure:"sync_with_system" toml:"sync_with_system" json:"sync_with_system"`
	// TransitionDurationMs is how long the transition flag stays raised; 0 disables it.
	TransitionDurationMs int    `mapstructure:"transition_duration_ms" toml:"transition_duration_ms" json:"transition_duration_ms" jsonschema:"minimum=0,maximum=10000"`
	ClassNameDark        string `mapstructure:"class_name_dark" toml:"class_name_dark" json:"class_name_dark"`
	ClassNameLight       string `mapstructure:"class_name_light" toml:"class_name_light" json:"class_name_light"`
}

// StorageBackend selects where the mode is persisted.
type StorageBackend string

const (
	StorageJSON   StorageBackend = "json"
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
	StorageNone   StorageBackend = "none"
)

// StorageConfig holds persistence settings.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=json,enum=sqlite,enum=memory,enum=none"`
	// Path of the JSON file or SQLite database. Empty selects the XDG default.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Color scheme override values.
const (
	ColorSchemeDefault     = "default"
	ColorSchemePreferDark  = "prefer-dark"
	ColorSchemePreferLight = "prefer-light"
)

// SystemConfig controls how the system color scheme is read.
type SystemConfig struct {
	// ColorScheme overrides detection: "prefer-dark", "prefer-light", or "default" (detect).
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
	// PollIntervalMs re-reads detectors that cannot push changes; 0 disables polling.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=0"`
}

// MarkerConfig controls the marker file.
type MarkerConfig struct {
	// File receives the active class name after each change. Empty disables it.
	File string `mapstructure:"file" toml:"file" json:"file"`
}

// AppearanceConfig holds the light and dark palettes.
type AppearanceConfig struct {
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`

	// File output, used by long-running commands (watch, tui).
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// UIConfig holds host settings.
type UIConfig struct {
	// Headless runs the switch without a marker root or system preference.
	Headless bool `mapstructure:"headless" toml:"headless" json:"headless"`
}
