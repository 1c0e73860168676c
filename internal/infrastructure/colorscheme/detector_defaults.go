package colorscheme

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "defaults"
	priorityDefaults     = 90
)

// DefaultsDetector reads AppleInterfaceStyle on macOS. The key is only
// present, with value "Dark", while dark mode is on.
type DefaultsDetector struct {
	goos     string
	run      commandRunner
	lookPath lookPath
}

// NewDefaultsDetector creates a macOS defaults detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{goos: runtime.GOOS, run: runCommand, lookPath: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string {
	return detectorNameDefaults
}

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int {
	return priorityDefaults
}

// Available implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Available() bool {
	if d.goos != "darwin" {
		return false
	}
	_, err := d.lookPath("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run(context.Background(), "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// A missing key exits non-zero and means light.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, true
		}
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "dark"), true
}
