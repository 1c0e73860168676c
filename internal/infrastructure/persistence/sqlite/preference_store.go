package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/logging"
)

const queryTimeout = 5 * time.Second

const (
	selectPreference = `SELECT value FROM preferences WHERE key = ?`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreference = `DELETE FROM preferences WHERE key = ?`
)

// PreferenceStore is a port.ModeStore backed by the preferences table.
type PreferenceStore struct {
	// ctx carries the logger; ModeStore calls have no context of their own.
	ctx context.Context
	db  *LazyDB
}

var _ port.ModeStore = (*PreferenceStore)(nil)

// NewPreferenceStore creates a store on top of db. The connection is opened
// on the first read or write.
func NewPreferenceStore(ctx context.Context, db *LazyDB) *PreferenceStore {
	return &PreferenceStore{ctx: ctx, db: db}
}

// GetItem implements port.ModeStore.
func (s *PreferenceStore) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(s.ctx, queryTimeout)
	defer cancel()

	db, err := s.db.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, selectPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem implements port.ModeStore.
func (s *PreferenceStore) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(s.ctx, queryTimeout)
	defer cancel()

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("saving preference")

	db, err := s.db.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, upsertPreference, key, value); err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *PreferenceStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(s.ctx, queryTimeout)
	defer cancel()

	db, err := s.db.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deletePreference, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}
