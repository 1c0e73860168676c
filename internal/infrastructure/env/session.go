// Package env inspects the process environment: desktop session, sandbox
// and attached terminal.
package env

import (
	"os"
	"path/filepath"
	"strings"
)

// IsFlatpak returns true if the process runs inside a Flatpak sandbox.
// Host tools such as gsettings are not reachable from there; the desktop
// portal is.
func IsFlatpak() bool {
	_, err := os.Stat("/.flatpak-info")
	return err == nil
}

// HasSessionBus reports whether a D-Bus session bus is reachable, either
// through DBUS_SESSION_BUS_ADDRESS or the default socket in XDG_RUNTIME_DIR.
func HasSessionBus() bool {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
		return true
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(runtimeDir, "bus"))
	return err == nil && info.Mode()&os.ModeSocket != 0
}

// Desktop returns the lower-cased current desktop names from
// XDG_CURRENT_DESKTOP, e.g. ["ubuntu", "gnome"].
func Desktop() []string {
	raw := os.Getenv("XDG_CURRENT_DESKTOP")
	if raw == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ":") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, strings.ToLower(part))
		}
	}
	return names
}
