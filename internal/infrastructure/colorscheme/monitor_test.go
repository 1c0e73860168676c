package colorscheme

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkswitch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// watchingDetector pushes a notification whenever poke receives.
type watchingDetector struct {
	*fakeDetector
	poke chan struct{}
}

func (d *watchingDetector) Watch(ctx context.Context, notify func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.poke:
			notify()
		}
	}
}

func TestMonitor_WatcherTriggersRefresh(t *testing.T) {
	detector := &watchingDetector{
		fakeDetector: newFakeDetector("watching", 100, true),
		poke:         make(chan struct{}),
	}
	resolver := NewResolver(nil)
	resolver.RegisterDetector(detector)
	resolver.PrefersDark()

	changes := make(chan bool, 4)
	resolver.Subscribe(func(dark, _ bool) { changes <- dark })

	ctx, cancel := context.WithCancel(testCtx())
	done := make(chan error, 1)
	go func() { done <- NewMonitor(resolver, 0).Run(ctx) }()

	detector.dark.Store(false)
	detector.poke <- struct{}{}

	select {
	case dark := <-changes:
		assert.False(t, dark)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher notification did not refresh")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestMonitor_Polling(t *testing.T) {
	detector := newFakeDetector("polled", 10, true)
	resolver := NewResolver(nil)
	resolver.RegisterDetector(detector)
	resolver.PrefersDark()

	changes := make(chan bool, 4)
	resolver.Subscribe(func(dark, _ bool) { changes <- dark })

	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()
	go func() { _ = NewMonitor(resolver, 10*time.Millisecond).Run(ctx) }()

	detector.dark.Store(false)

	select {
	case dark := <-changes:
		assert.False(t, dark)
	case <-time.After(2 * time.Second):
		t.Fatal("polling did not pick up the change")
	}
}

func TestMonitor_NothingToWatchBlocksUntilDone(t *testing.T) {
	resolver := NewResolver(nil)
	ctx, cancel := context.WithCancel(testCtx())

	done := make(chan error, 1)
	go func() { done <- NewMonitor(resolver, 0).Run(ctx) }()

	select {
	case <-done:
		t.Fatal("Run returned before cancel")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}
