package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkswitch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetItem("dark-mode", "true"))
	v, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)
}

func TestJSONFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := NewJSONFileStore(path)
	require.NoError(t, err)

	_, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.False(t, found, "missing file reads as absent")

	require.NoError(t, s.SetItem("dark-mode", "false"))
	require.NoError(t, s.SetItem("app.theme", "true"))

	v, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", v)

	v, found, err = s.GetItem("app.theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dark-mode":"false","app.theme":"true"}`, string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(jsonFilePerm), info.Mode().Perm())
}

func TestJSONFileStore_PreservesOtherMembers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"other":{"a":1},"dark-mode":true}`), 0o600))

	s, err := NewJSONFileStore(path)
	require.NoError(t, err)

	v, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v, "bare JSON booleans read as their literal text")

	require.NoError(t, s.SetItem("dark-mode", "false"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"other":{"a":1},"dark-mode":"false"}`, string(raw))
}

func TestJSONFileStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	s, err := NewJSONFileStore(path)
	require.NoError(t, err)

	_, _, err = s.GetItem("dark-mode")
	assert.Error(t, err)

	// Writing recovers the file.
	require.NoError(t, s.SetItem("dark-mode", "true"))
	v, found, err := s.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)
}

func TestNewJSONFileStore_EmptyPath(t *testing.T) {
	_, err := NewJSONFileStore("")
	assert.Error(t, err)
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "dark-mode", escapeKey("dark-mode"))
	assert.Equal(t, `app\.theme`, escapeKey("app.theme"))
	assert.Equal(t, `a\*b\?`, escapeKey("a*b?"))
}

func TestJSONFileStore_WatchReportsForeignWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	s, err := NewJSONFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem("dark-mode", "false"))

	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()

	got := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, "dark-mode", func(value string, found bool) {
			if found {
				got <- value
			}
		})
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	// Our own write is not reported.
	require.NoError(t, s.SetItem("dark-mode", "false"))

	// Another process replaces the file.
	other, err := NewJSONFileStore(path)
	require.NoError(t, err)
	require.NoError(t, other.SetItem("dark-mode", "true"))

	select {
	case v := <-got:
		assert.Equal(t, "true", v)
	case <-time.After(3 * time.Second):
		t.Fatal("foreign write was not reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
