package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/darkswitch/internal/infrastructure/config"
)

func TestStatusRenderer_Render(t *testing.T) {
	r := NewStatusRenderer(NewTheme(config.DefaultConfig(), true))

	out := r.Render(StatusInfo{
		IsDark:         true,
		SystemTheme:    "light",
		Markers:        []string{"dark"},
		StorageBackend: "json",
		StoragePath:    "/tmp/state.json",
		Transitioning:  true,
		Detectors: []DetectorLine{
			{Name: "portal", Priority: 100, Available: false},
			{Name: "env", Priority: 20, Available: true, OK: true, PrefersDark: true},
		},
	})

	assert.Contains(t, out, "darkswitch")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "/tmp/state.json")
	assert.Contains(t, out, "transitioning")
	assert.Contains(t, out, "portal")
	assert.Contains(t, out, "unavailable")
}

func TestStatusRenderer_Defaults(t *testing.T) {
	r := NewStatusRenderer(NewTheme(nil, false))

	out := r.Render(StatusInfo{})
	assert.Contains(t, out, "not observed")
	assert.Contains(t, out, "none")
	assert.NotContains(t, out, "Detectors")
}

func TestThemes_For(t *testing.T) {
	themes := NewThemes(config.DefaultConfig())
	assert.True(t, themes.For(true).IsDark)
	assert.False(t, themes.For(false).IsDark)
	assert.Equal(t, "#0a0a0b", string(themes.Dark.Background))
}
