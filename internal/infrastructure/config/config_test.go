package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	isolateXDG(t)
	cfg := DefaultConfig()
	require.NoError(t, resolvePaths(cfg))
	normalizeConfig(cfg)
	assert.NoError(t, validateConfig(cfg))

	assert.Equal(t, "dark-mode", cfg.Switch.StorageKey)
	assert.Equal(t, 300, cfg.Switch.TransitionDurationMs)
	assert.Equal(t, "dark", cfg.Switch.ClassNameDark)
	assert.Equal(t, "light", cfg.Switch.ClassNameLight)
	assert.False(t, cfg.Switch.DefaultDark)
	assert.False(t, cfg.Switch.SyncWithSystem)
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	m, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, m.Load())

	configFile := filepath.Join(root, "config", "darkswitch", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "darkswitch", "config.schema.json"))
	assert.Equal(t, configFile, m.GetConfigFile())

	cfg := m.Get()
	assert.Equal(t, StorageJSON, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "state", "darkswitch", "state.json"), cfg.Storage.Path)
	assert.Equal(t, ColorSchemeDefault, cfg.System.ColorScheme)
}

func TestManager_LoadExplicitFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	writeFile(t, path, `
[switch]
default_dark = true
storage_key = "theme"
sync_with_system = true
transition_duration_ms = 0
class_name_dark = "theme-dark"

[storage]
backend = "SQLite"

[system]
color_scheme = "dark"
poll_interval_ms = 0
`)

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.True(t, cfg.Switch.DefaultDark)
	assert.Equal(t, "theme", cfg.Switch.StorageKey)
	assert.True(t, cfg.Switch.SyncWithSystem)
	assert.Zero(t, cfg.Switch.TransitionDurationMs)
	assert.Equal(t, "theme-dark", cfg.Switch.ClassNameDark)
	assert.Equal(t, "light", cfg.Switch.ClassNameLight, "unset keys keep defaults")
	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "data", "darkswitch", "darkswitch.sqlite"), cfg.Storage.Path)
	assert.Equal(t, ColorSchemePreferDark, cfg.System.ColorScheme)
	assert.Equal(t, path, m.GetConfigFile())
}

func TestManager_LoadMissingExplicitFile(t *testing.T) {
	root := isolateXDG(t)
	m, err := NewManager(filepath.Join(root, "nope.toml"))
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("DARKSWITCH_LOG_LEVEL", "debug")
	t.Setenv("DARKSWITCH_SWITCH_DEFAULT_DARK", "true")
	t.Setenv("DARKSWITCH_STORAGE_BACKEND", "memory")

	m, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Switch.DefaultDark)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
}

func TestManager_InvalidFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "bad.toml")
	writeFile(t, path, `
[switch]
class_name_dark = "same"
class_name_light = "same"
transition_duration_ms = -5

[storage]
backend = "redis"

[appearance.dark_palette]
text = "white"
`)

	m, err := NewManager(path)
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "must differ")
	assert.Contains(t, msg, "switch.transition_duration_ms")
	assert.Contains(t, msg, "storage.backend")
	assert.Contains(t, msg, "appearance.dark_palette.text")
}

func TestManager_ReloadNotifies(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	writeFile(t, path, "[switch]\nsync_with_system = false\n")

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got *Config
	m.OnConfigChange(func(cfg *Config) { got = cfg })

	writeFile(t, path, "[switch]\nsync_with_system = true\n")
	require.NoError(t, m.Reload())

	require.NotNil(t, got)
	assert.True(t, got.Switch.SyncWithSystem)
	assert.True(t, m.Get().Switch.SyncWithSystem)

	// A broken edit keeps the previous config.
	writeFile(t, path, "[switch]\ntransition_duration_ms = 999999\n")
	assert.Error(t, m.Reload())
	assert.True(t, m.Get().Switch.SyncWithSystem)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.System.ColorScheme = " Light "
	cfg.Storage.Backend = ""
	cfg.Switch.StorageKey = "  "
	cfg.Switch.ClassNameDark = ""
	cfg.Logging.Level = "DEBUG"

	normalizeConfig(cfg)

	assert.Equal(t, ColorSchemePreferLight, cfg.System.ColorScheme)
	assert.Equal(t, StorageJSON, cfg.Storage.Backend)
	assert.Equal(t, "dark-mode", cfg.Switch.StorageKey)
	assert.Equal(t, "dark", cfg.Switch.ClassNameDark)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "darkswitch configuration", schema["title"])
	assert.Contains(t, string(data), "transition_duration_ms")
	assert.Contains(t, string(data), "sync_with_system")
}

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "written.toml")

	cfg := DefaultConfig()
	cfg.Switch.DefaultDark = true
	cfg.Switch.StorageKey = "my-key"
	require.NoError(t, WriteConfigOrdered(cfg, path))

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())
	assert.True(t, m.Get().Switch.DefaultDark)
	assert.Equal(t, "my-key", m.Get().Switch.StorageKey)

	assert.Error(t, WriteConfigOrdered(nil, path))
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	dir := t.TempDir()
	t.Chdir(dir)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	want := filepath.Join(dir, ".dev", "darkswitch")
	assert.Equal(t, want, dirs.ConfigHome)
	assert.Equal(t, want, dirs.StateHome)
}
