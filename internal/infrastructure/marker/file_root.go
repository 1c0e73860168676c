package marker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/logging"
)

const (
	markerFilePerm = 0o644
	markerDirPerm  = 0o755
)

// FileRoot is a marker root mirrored to a file. After every change the file
// holds the space-separated marker list followed by a newline, so shell
// prompts, editors and status bars can follow the active mode.
type FileRoot struct {
	ctx  context.Context
	path string

	mu      sync.Mutex
	classes *ClassList
}

// NewFileRoot creates a file-backed marker root. Existing markers in the
// file are loaded so other markers written by users survive.
func NewFileRoot(ctx context.Context, path string) (*FileRoot, error) {
	if path == "" {
		return nil, fmt.Errorf("marker file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), markerDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create marker directory: %w", err)
	}

	r := &FileRoot{
		ctx:     ctx,
		path:    path,
		classes: NewClassList(),
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		for _, name := range strings.Fields(string(data)) {
			r.classes.AddMarker(name)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read marker file: %w", err)
	}

	return r, nil
}

// Path returns the marker file location.
func (r *FileRoot) Path() string {
	return r.path
}

// AddMarker implements port.MarkerRoot.
func (r *FileRoot) AddMarker(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes.AddMarker(name)
	r.flush()
}

// RemoveMarker implements port.MarkerRoot.
func (r *FileRoot) RemoveMarker(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes.RemoveMarker(name)
	r.flush()
}

// ReplaceMarker implements port.MarkerRoot with a single file write.
func (r *FileRoot) ReplaceMarker(remove, add string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes.ReplaceMarker(remove, add)
	r.flush()
}

// HasMarker implements port.MarkerRoot.
func (r *FileRoot) HasMarker(name string) bool {
	return r.classes.HasMarker(name)
}

// Markers implements port.MarkerRoot.
func (r *FileRoot) Markers() []string {
	return r.classes.Markers()
}

// flush writes the marker list atomically. Caller must hold r.mu.
func (r *FileRoot) flush() {
	log := logging.FromContext(r.ctx)

	content := r.classes.String() + "\n"
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".marker-*")
	if err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("failed to create marker temp file")
		return
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(content)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		log.Warn().Err(writeErr).AnErr("close_err", closeErr).Str("path", r.path).Msg("failed to write marker file")
		return
	}
	if err := os.Chmod(tmpName, markerFilePerm); err != nil {
		log.Debug().Err(err).Msg("failed to chmod marker file")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		log.Warn().Err(err).Str("path", r.path).Msg("failed to replace marker file")
	}
}

var _ port.MarkerRoot = (*FileRoot)(nil)
