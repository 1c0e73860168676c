package port

import "time"

// ModeStore is a string key-value store used to persist the dark mode.
// Values are the literal strings "true" or "false".
type ModeStore interface {
	// GetItem returns the stored value. found is false when the key is absent.
	GetItem(key string) (value string, found bool, err error)

	// SetItem stores value under key.
	SetItem(key, value string) error
}

// MarkerRoot is the shared UI root the dark switch tags with a marker
// (a class name) naming the active mode.
type MarkerRoot interface {
	AddMarker(name string)
	RemoveMarker(name string)
	// ReplaceMarker removes one marker and adds another as a single
	// change. Observers never see the root holding neither.
	ReplaceMarker(remove, add string)
	HasMarker(name string) bool
	Markers() []string
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Clock schedules callbacks. Production code uses the wall clock; tests
// substitute a manually advanced one.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}
