package colorscheme

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/logging"
)

// Monitor keeps a Resolver current. Detectors implementing
// port.ColorSchemeWatcher push change notifications; all others are
// covered by polling every interval.
type Monitor struct {
	resolver *Resolver
	interval time.Duration

	// refreshMu keeps change callbacks in resolution order.
	refreshMu sync.Mutex
}

// NewMonitor creates a monitor. An interval of zero disables polling.
func NewMonitor(resolver *Resolver, interval time.Duration) *Monitor {
	return &Monitor{resolver: resolver, interval: interval}
}

// Run blocks until ctx is done. A watcher that fails is logged and
// dropped; polling continues.
func (m *Monitor) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "colorscheme-monitor")
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	started := 0

	for _, detector := range m.resolver.Detectors() {
		watcher, ok := detector.(port.ColorSchemeWatcher)
		if !ok || !detector.Available() {
			continue
		}
		name := detector.Name()
		started++
		g.Go(func() error {
			log.Debug().Str("detector", name).Msg("watching color scheme")
			if err := watcher.Watch(gctx, m.refresh); err != nil {
				log.Warn().Err(err).Str("detector", name).Msg("color scheme watcher stopped")
			}
			return nil
		})
	}

	if m.interval > 0 {
		started++
		g.Go(func() error {
			ticker := time.NewTicker(m.interval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					m.refresh()
				}
			}
		})
	}

	if started == 0 {
		log.Debug().Msg("no color scheme watchers, waiting for shutdown")
		<-ctx.Done()
		return nil
	}
	return g.Wait()
}

func (m *Monitor) refresh() {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()
	m.resolver.Refresh()
}
