package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)
	ctx := WithComponent(WithContext(context.Background(), logger), "darkswitch")

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"darkswitch"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	// Disabled logger must not panic.
	log.Info().Msg("dropped")
}

func TestRotatingFile_Rotates(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotatingFile(RotateConfig{
		Dir:        dir,
		FileName:   "watch.log",
		MaxSize:    16,
		MaxBackups: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 4; i++ {
		_, err = r.Write([]byte("0123456789\n"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "watch.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	current, err := os.ReadFile(filepath.Join(dir, "watch.log"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789\n", string(current))
}

func TestRotatingFile_RequiresName(t *testing.T) {
	_, err := NewRotatingFile(RotateConfig{Dir: t.TempDir()})
	assert.Error(t, err)
}
