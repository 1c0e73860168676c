package colorscheme

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/darkswitch/internal/infrastructure/env"
	"github.com/bnema/darkswitch/internal/logging"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	gsettingsSchema = "org.gnome.desktop.interface"
	gsettingsKey    = "color-scheme"
)

// GsettingsDetector reads org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	run       commandRunner
	lookPath  lookPath
	sandboxed func() bool
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runCommand, lookPath: exec.LookPath, sandboxed: env.IsFlatpak}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector. Inside a Flatpak the
// sandboxed gsettings does not see the host setting.
func (d *GsettingsDetector) Available() bool {
	if d.sandboxed != nil && d.sandboxed() {
		return false
	}
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run(context.Background(), "gsettings", "get", gsettingsSchema, gsettingsKey)
	if err != nil {
		return false, false
	}
	return parseGsettingsScheme(string(output))
}

// Watch implements port.ColorSchemeWatcher using `gsettings monitor`.
func (d *GsettingsDetector) Watch(ctx context.Context, notify func()) error {
	log := logging.FromContext(ctx)

	cmd := exec.CommandContext(ctx, "gsettings", "monitor", gsettingsSchema, gsettingsKey)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("gsettings monitor: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("gsettings monitor: %w", err)
	}
	log.Debug().Msg("gsettings monitor started")

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		// Lines look like "color-scheme: 'prefer-dark'".
		log.Debug().Str("line", scanner.Text()).Msg("gsettings change")
		notify()
	}

	err = cmd.Wait()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("gsettings monitor exited: %w", err)
	}
	return nil
}

// parseGsettingsScheme parses output like "'prefer-dark'\n".
// "default" carries no preference.
func parseGsettingsScheme(output string) (prefersDark, ok bool) {
	result := strings.Trim(strings.TrimSpace(output), "'\"")
	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
