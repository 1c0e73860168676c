// Package marker provides port.MarkerRoot implementations.
package marker

import (
	"slices"
	"strings"
	"sync"

	"github.com/bnema/darkswitch/internal/application/port"
)

// ClassList is an ordered set of marker names, like a DOM element's
// classList. It is safe for concurrent use.
type ClassList struct {
	mu      sync.RWMutex
	markers []string
}

// NewClassList creates a class list holding the given initial markers.
func NewClassList(initial ...string) *ClassList {
	c := &ClassList{}
	for _, name := range initial {
		c.AddMarker(name)
	}
	return c
}

// AddMarker implements port.MarkerRoot. Adding a present marker is a no-op.
func (c *ClassList) AddMarker(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.markers, name) {
		c.markers = append(c.markers, name)
	}
}

// RemoveMarker implements port.MarkerRoot.
func (c *ClassList) RemoveMarker(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = slices.DeleteFunc(c.markers, func(m string) bool { return m == name })
}

// ReplaceMarker implements port.MarkerRoot.
func (c *ClassList) ReplaceMarker(remove, add string) {
	add = strings.TrimSpace(add)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = slices.DeleteFunc(c.markers, func(m string) bool { return m == remove })
	if add != "" && !slices.Contains(c.markers, add) {
		c.markers = append(c.markers, add)
	}
}

// HasMarker implements port.MarkerRoot.
func (c *ClassList) HasMarker(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.markers, name)
}

// Markers implements port.MarkerRoot. The returned slice is a copy.
func (c *ClassList) Markers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.markers)
}

// String returns the markers joined by spaces.
func (c *ClassList) String() string {
	return strings.Join(c.Markers(), " ")
}

var _ port.MarkerRoot = (*ClassList)(nil)
