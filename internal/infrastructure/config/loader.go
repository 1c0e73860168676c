package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	explicit   bool
	configFile string
}

// NewManager creates a new configuration manager. A non-empty configFile
// replaces the XDG lookup.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// DARKSWITCH_SWITCH_DEFAULT_DARK, DARKSWITCH_STORAGE_BACKEND, ...
	v.SetEnvPrefix("DARKSWITCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DARKSWITCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DARKSWITCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DARKSWITCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DARKSWITCH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		explicit:   configFile != "",
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing XDG config file is created with defaults; a missing explicit
// file is an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) || m.explicit {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// resolvePaths fills storage and log paths left empty.
func resolvePaths(config *Config) error {
	if config.Storage.Path == "" {
		var (
			path string
			err  error
		)
		switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
		case StorageSQLite:
			path, err = GetDatabaseFile()
		case StorageJSON, "":
			path, err = GetStateFile()
		}
		if err != nil {
			return fmt.Errorf("failed to get storage path: %w", err)
		}
		config.Storage.Path = path
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageJSON
	}

	config.System.ColorScheme = strings.ToLower(strings.TrimSpace(config.System.ColorScheme))
	switch config.System.ColorScheme {
	case "", "system", "auto":
		config.System.ColorScheme = ColorSchemeDefault
	case "dark":
		config.System.ColorScheme = ColorSchemePreferDark
	case "light":
		config.System.ColorScheme = ColorSchemePreferLight
	}

	config.Switch.StorageKey = strings.TrimSpace(config.Switch.StorageKey)
	if config.Switch.StorageKey == "" {
		config.Switch.StorageKey = defaultStorageKey
	}
	config.Switch.ClassNameDark = strings.TrimSpace(config.Switch.ClassNameDark)
	if config.Switch.ClassNameDark == "" {
		config.Switch.ClassNameDark = defaultClassNameDark
	}
	config.Switch.ClassNameLight = strings.TrimSpace(config.Switch.ClassNameLight)
	if config.Switch.ClassNameLight == "" {
		config.Switch.ClassNameLight = defaultClassNameLight
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Marker.File = strings.TrimSpace(config.Marker.File)
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	path, _ := GetConfigFile()
	return path
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	schemaFile, err := GetSchemaFile()
	if err != nil {
		return err
	}
	return WriteSchemaFile(schemaFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("switch.default_dark", defaults.Switch.DefaultDark)
	m.viper.SetDefault("switch.storage_key", defaults.Switch.StorageKey)
	m.viper.SetDefault("switch.sync_with_system", defaults.Switch.SyncWithSystem)
	m.viper.SetDefault("switch.transition_duration_ms", defaults.Switch.TransitionDurationMs)
	m.viper.SetDefault("switch.class_name_dark", defaults.Switch.ClassNameDark)
	m.viper.SetDefault("switch.class_name_light", defaults.Switch.ClassNameLight)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("system.color_scheme", defaults.System.ColorScheme)
	m.viper.SetDefault("system.poll_interval_ms", defaults.System.PollIntervalMs)

	m.viper.SetDefault("marker.file", defaults.Marker.File)

	m.setPaletteDefaults("appearance.light_palette", defaults.Appearance.LightPalette)
	m.setPaletteDefaults("appearance.dark_palette", defaults.Appearance.DarkPalette)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("ui.headless", defaults.UI.Headless)
}

func (m *Manager) setPaletteDefaults(prefix string, p ColorPalette) {
	m.viper.SetDefault(prefix+".background", p.Background)
	m.viper.SetDefault(prefix+".surface", p.Surface)
	m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".border", p.Border)
}
