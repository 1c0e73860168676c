package colorscheme

import (
	"context"
	"os/exec"
	"time"
)

// commandTimeout bounds a single query of an external tool.
const commandTimeout = 2 * time.Second

// commandRunner runs an external command and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}

// lookPath reports whether name resolves on PATH.
type lookPath func(name string) (string, error)
