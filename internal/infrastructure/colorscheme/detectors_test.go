package colorscheme

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/rymdport/portal/settings"
	"github.com/stretchr/testify/assert"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		name      string
		vars      map[string]string
		available bool
		wantDark  bool
		wantOk    bool
	}{
		{"nothing set", nil, false, false, false},
		{"explicit dark", map[string]string{"DARKSWITCH_COLOR_SCHEME": "dark"}, true, true, true},
		{"explicit beats gtk", map[string]string{"DARKSWITCH_COLOR_SCHEME": "prefer-light", "GTK_THEME": "Adwaita:dark"}, true, false, true},
		{"gtk dark", map[string]string{"GTK_THEME": "Adwaita:dark"}, true, true, true},
		{"gtk light", map[string]string{"GTK_THEME": "Adwaita"}, true, false, true},
		{"colorfgbg dark", map[string]string{"COLORFGBG": "15;0"}, true, true, true},
		{"colorfgbg light", map[string]string{"COLORFGBG": "0;default;15"}, true, false, true},
		{"colorfgbg garbage", map[string]string{"COLORFGBG": "x"}, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &EnvDetector{getenv: envFrom(tt.vars)}
			assert.Equal(t, tt.available, d.Available())
			dark, ok := d.Detect()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestParseGsettingsScheme(t *testing.T) {
	dark, ok := parseGsettingsScheme("'prefer-dark'\n")
	assert.True(t, ok)
	assert.True(t, dark)

	dark, ok = parseGsettingsScheme("'prefer-light'")
	assert.True(t, ok)
	assert.False(t, dark)

	_, ok = parseGsettingsScheme("'default'")
	assert.False(t, ok)
}

func TestGsettingsDetector(t *testing.T) {
	var gotArgs []string
	d := &GsettingsDetector{
		run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotArgs = append([]string{name}, args...)
			return []byte("'prefer-dark'\n"), nil
		},
		lookPath: func(string) (string, error) { return "/usr/bin/gsettings", nil },
	}

	assert.True(t, d.Available())
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)
	assert.Equal(t, []string{"gsettings", "get", "org.gnome.desktop.interface", "color-scheme"}, gotArgs)

	d.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("no schema")
	}
	_, ok = d.Detect()
	assert.False(t, ok)

	d.sandboxed = func() bool { return true }
	assert.False(t, d.Available(), "host gsettings is not reachable from a sandbox")

	d.sandboxed = nil
	d.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	assert.False(t, d.Available())
}

func TestPortalScheme(t *testing.T) {
	dark, ok := portalScheme(uint32(1))
	assert.True(t, ok)
	assert.True(t, dark)

	dark, ok = portalScheme(uint32(2))
	assert.True(t, ok)
	assert.False(t, dark)

	_, ok = portalScheme(uint32(0))
	assert.False(t, ok, "no preference")

	_, ok = portalScheme("dark")
	assert.False(t, ok)
}

func TestPortalDetector(t *testing.T) {
	d := &PortalDetector{
		hasBus: func() bool { return true },
		readOne: func(namespace, key string) (any, error) {
			assert.Equal(t, appearanceNamespace, namespace)
			assert.Equal(t, colorSchemeKey, key)
			return uint32(1), nil
		},
	}

	assert.True(t, d.Available())
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	d.readOne = func(string, string) (any, error) { return nil, errors.New("no portal") }
	_, ok = d.Detect()
	assert.False(t, ok)
}

func TestPortalDetector_WatchFiltersSettings(t *testing.T) {
	d := &PortalDetector{
		onChange: func(callback func(settings.Changed)) error {
			callback(settings.Changed{Namespace: "org.gnome.desktop.interface", Key: "gtk-theme"})
			callback(settings.Changed{Namespace: appearanceNamespace, Key: "accent-color"})
			callback(settings.Changed{Namespace: appearanceNamespace, Key: colorSchemeKey, Value: uint32(2)})
			return nil
		},
	}

	notified := 0
	err := d.Watch(context.Background(), func() { notified++ })
	assert.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestPortalDetector_WatchError(t *testing.T) {
	d := &PortalDetector{
		onChange: func(func(settings.Changed)) error { return errors.New("no bus") },
	}
	assert.Error(t, d.Watch(context.Background(), func() {}))
}

func TestTerminalDetector(t *testing.T) {
	queries := 0
	interactive := true
	d := &TerminalDetector{
		interactive: func() bool { return interactive },
		query: func() bool {
			queries++
			return true
		},
	}

	assert.True(t, d.Available())
	for range 3 {
		dark, ok := d.Detect()
		assert.True(t, ok)
		assert.True(t, dark)
	}
	assert.Equal(t, 1, queries, "background is queried once")

	interactive = false
	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)
}

func TestDefaultsDetector(t *testing.T) {
	d := &DefaultsDetector{
		goos:     "darwin",
		lookPath: func(string) (string, error) { return "/usr/bin/defaults", nil },
		run: func(context.Context, string, ...string) ([]byte, error) {
			return []byte("Dark\n"), nil
		},
	}
	assert.True(t, d.Available())
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	d.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exec failed")
	}
	_, ok = d.Detect()
	assert.False(t, ok)

	d.goos = "linux"
	assert.False(t, d.Available())
}

func TestDefaultsDetector_MissingKeyMeansLight(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	d := &DefaultsDetector{
		goos: "darwin",
		run: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			return exec.CommandContext(ctx, "false").Output()
		},
	}
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.False(t, dark)
}

func TestNewDefaultResolver_RegistersAllDetectors(t *testing.T) {
	resolver := NewDefaultResolver(nil)

	names := map[string]int{}
	for _, d := range resolver.Detectors() {
		names[d.Name()] = d.Priority()
	}
	assert.Equal(t, map[string]int{
		"portal":    100,
		"registry":  100,
		"defaults":  90,
		"terminal":  50,
		"env":       20,
		"gsettings": 10,
	}, names)
}
