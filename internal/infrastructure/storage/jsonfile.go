package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/logging"
)

const (
	jsonFilePerm = 0o600
	jsonDirPerm  = 0o750
)

// JSONFileStore persists values as string members of a JSON object file.
// Other members of the object are preserved.
type JSONFileStore struct {
	path string

	mu sync.Mutex
	// known holds the last value this process wrote or observed per key,
	// so Watch only reports foreign writes.
	known map[string]string
}

// NewJSONFileStore creates a store backed by the file at path. The file is
// created on first write.
func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	return &JSONFileStore{
		path:  path,
		known: make(map[string]string),
	}, nil
}

// Path returns the backing file location.
func (s *JSONFileStore) Path() string {
	return s.path
}

// GetItem implements port.ModeStore.
func (s *JSONFileStore) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	return lookup(data, key)
}

// SetItem implements port.ModeStore.
func (s *JSONFileStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 || !gjson.ValidBytes(data) {
		data = []byte("{}")
	}

	updated, err := sjson.SetBytes(data, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := s.write(updated); err != nil {
		return err
	}
	s.known[key] = value
	return nil
}

// Watch reports values written to key by other processes. fn receives the
// new value and whether the key is present. Watch blocks until ctx is done.
func (s *JSONFileStore) Watch(ctx context.Context, key string, fn func(value string, found bool)) error {
	log := logging.FromContext(ctx)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, jsonDirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: writes replace the file through a rename.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.mu.Lock()
	if data, readErr := s.read(); readErr == nil {
		if v, found, _ := lookup(data, key); found {
			s.known[key] = v
		}
	}
	s.mu.Unlock()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Str("path", s.path).Msg("store watcher error")
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if value, found, changed := s.observe(key); changed {
				log.Debug().Str("key", key).Str("value", value).Bool("found", found).Msg("store changed externally")
				fn(value, found)
			}
		}
	}
}

// observe re-reads key and records it, reporting whether it differs from
// the last known value.
func (s *JSONFileStore) observe(key string) (value string, found, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		// Missing or truncated mid-write; wait for the next event.
		return "", false, false
	}
	value, found, err = lookup(data, key)
	if err != nil {
		return "", false, false
	}

	prev, known := s.known[key]
	switch {
	case found && known && prev == value:
		return value, found, false
	case !found && !known:
		return value, found, false
	}

	if found {
		s.known[key] = value
	} else {
		delete(s.known, key)
	}
	return value, found, true
}

// read returns the file content, or nil if the file does not exist.
// Caller must hold s.mu.
func (s *JSONFileStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	return data, nil
}

// write replaces the file atomically. Caller must hold s.mu.
func (s *JSONFileStore) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, jsonDirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := os.Chmod(tmpName, jsonFilePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set store permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

func lookup(data []byte, key string) (string, bool, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", false, nil
	}
	if !gjson.ValidBytes(data) {
		return "", false, fmt.Errorf("store is not valid JSON")
	}
	result := gjson.GetBytes(data, escapeKey(key))
	if !result.Exists() {
		return "", false, nil
	}
	return result.String(), true, nil
}

// escapeKey makes key a literal gjson/sjson path component.
func escapeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var _ port.ModeStore = (*JSONFileStore)(nil)
