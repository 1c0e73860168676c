package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

func newHeadlessSwitch(t *testing.T) *theme.DarkSwitch {
	t.Helper()
	opts := theme.DefaultOptions()
	opts.DisableTransition = true
	sw := theme.NewDarkSwitch(context.Background(), opts)
	t.Cleanup(sw.Close)
	return sw
}

func TestApplyStoredMode(t *testing.T) {
	ctx := context.Background()
	sw := newHeadlessSwitch(t)

	applyStoredMode(ctx, sw, "true", true)
	assert.True(t, sw.IsDark())

	applyStoredMode(ctx, sw, "garbage", true)
	assert.True(t, sw.IsDark())

	applyStoredMode(ctx, sw, "", false)
	assert.True(t, sw.IsDark())

	applyStoredMode(ctx, sw, "false", true)
	assert.False(t, sw.IsDark())
}

func TestStatusToJSON(t *testing.T) {
	out, err := statusToJSON(styles.StatusInfo{
		IsDark:         true,
		SystemTheme:    "light",
		SyncWithSystem: true,
		StorageBackend: "json",
		StoragePath:    "/tmp/state.json",
		Detectors: []styles.DetectorLine{
			{Name: "portal", Priority: 100, Available: true, OK: true, PrefersDark: false},
		},
	})
	require.NoError(t, err)
	require.True(t, gjson.Valid(out))

	doc := gjson.Parse(out)
	assert.Equal(t, "dark", doc.Get("mode").String())
	assert.True(t, doc.Get("is_dark").Bool())
	assert.Equal(t, "light", doc.Get("system_theme").String())
	assert.Equal(t, "/tmp/state.json", doc.Get("storage.path").String())
	assert.True(t, doc.Get("markers").IsArray())
	assert.False(t, doc.Get("marker_file").Exists())
	assert.Equal(t, "portal", doc.Get("detectors.0.name").String())
	assert.Equal(t, int64(100), doc.Get("detectors.0.priority").Int())
}

func TestNeedsApp(t *testing.T) {
	assert.True(t, needsApp(statusCmd))
	assert.False(t, needsApp(configSchemaCmd))
	assert.False(t, needsApp(&cobra.Command{Use: "help"}))
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"status", "toggle", "enable", "disable", "set", "watch", "tui", "css", "config", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
