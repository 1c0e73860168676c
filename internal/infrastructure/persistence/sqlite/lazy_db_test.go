package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkswitch/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "prefs.db"))
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_InitializesOnce(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "prefs.db"))

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())

	version, err := sqlite.MigrationVersion(ctx, dbs[0])
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "prefs.db"))
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPath(t *testing.T) {
	lazy := sqlite.NewLazyDB("")
	_, err := lazy.DB(testCtx())
	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
