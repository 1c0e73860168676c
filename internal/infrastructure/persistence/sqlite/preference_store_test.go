package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkswitch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/darkswitch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestStore(t *testing.T, path string) *sqlite.PreferenceStore {
	t.Helper()
	lazy := sqlite.NewLazyDB(path)
	t.Cleanup(func() { _ = lazy.Close() })
	return sqlite.NewPreferenceStore(testCtx(), lazy)
}

func TestPreferenceStore_GetMissing(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "prefs.db"))

	value, found, err := store.GetItem("dark-mode")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestPreferenceStore_Upsert(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "prefs.db"))

	require.NoError(t, store.SetItem("dark-mode", "true"))
	require.NoError(t, store.SetItem("dark-mode", "false"))

	value, found, err := store.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", value)

	require.NoError(t, store.Delete("dark-mode"))
	_, found, err = store.GetItem("dark-mode")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Delete("dark-mode"), "deleting a missing key")
}

func TestPreferenceStore_PersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	first := sqlite.NewLazyDB(path)
	require.NoError(t, sqlite.NewPreferenceStore(testCtx(), first).SetItem("dark-mode", "true"))
	require.NoError(t, first.Close())

	second := newTestStore(t, path)
	value, found, err := second.GetItem("dark-mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}
