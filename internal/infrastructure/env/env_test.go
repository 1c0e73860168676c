package env

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktop(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "ubuntu:GNOME")
	assert.Equal(t, []string{"ubuntu", "gnome"}, Desktop())

	t.Setenv("XDG_CURRENT_DESKTOP", "")
	assert.Nil(t, Desktop())
}

func TestHasSessionBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/run/user/1000/bus")
	assert.True(t, HasSessionBus())

	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	assert.False(t, HasSessionBus(), "no socket in runtime dir")

	// Unix socket paths are length limited; keep the directory short.
	dir, err := os.MkdirTemp("", "rt")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	ln, err := net.Listen("unix", filepath.Join(dir, "bus"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	t.Setenv("XDG_RUNTIME_DIR", dir)
	assert.True(t, HasSessionBus())
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f.Fd()))
}
