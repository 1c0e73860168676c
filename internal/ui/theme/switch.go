package theme

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/domain/entity"
	"github.com/bnema/darkswitch/internal/infrastructure/clock"
	"github.com/bnema/darkswitch/internal/logging"
)

// Defaults applied by DefaultOptions and, for empty strings, by NewDarkSwitch.
const (
	DefaultStorageKey         = "dark-mode"
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultClassNameDark      = "dark"
	DefaultClassNameLight     = "light"
)

// Environment is the interactive context a DarkSwitch is mounted in.
type Environment struct {
	// Root receives the dark/light marker. May be nil.
	Root port.MarkerRoot
	// Preference reports the ambient color scheme. May be nil.
	Preference port.PreferenceSource
}

// Options configures a DarkSwitch. Start from DefaultOptions.
type Options struct {
	// DefaultDark is used when no stronger signal applies.
	DefaultDark bool
	// StorageKey is the key the mode is persisted under.
	StorageKey string
	// OnChange is called with the new mode after every change. A mutator
	// called from OnChange is queued and applied once the current change
	// has finished.
	OnChange func(isDark bool)
	// SyncWithSystem makes the ambient preference override the manual and
	// persisted mode at startup and on every ambient change.
	SyncWithSystem bool
	// TransitionDuration is how long IsTransitioning stays true after a
	// change. Zero or negative means DefaultTransitionDuration.
	TransitionDuration time.Duration
	// DisableTransition turns the transition flag off.
	DisableTransition bool
	ClassNameDark     string
	ClassNameLight    string
	// Store persists the mode. Nil skips persistence.
	Store port.ModeStore
	// Environment is nil when running without a UI.
	Environment *Environment
	// Clock schedules the transition flag. Nil uses the wall clock.
	Clock port.Clock
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		StorageKey:         DefaultStorageKey,
		TransitionDuration: DefaultTransitionDuration,
		ClassNameDark:      DefaultClassNameDark,
		ClassNameLight:     DefaultClassNameLight,
	}
}

// State is a consistent view of the switch.
type State struct {
	IsDark        bool
	SystemTheme   entity.SystemTheme
	Transitioning bool
}

// DarkSwitch holds the dark/light mode and keeps its side effects (callback,
// persistence, markers, transition flag) in step with it.
//
// The mode is updated as soon as a mutator is called. Side effects run one
// change at a time, in call order: a change made while another is being
// applied (from OnChange or another goroutine) is queued, and the goroutine
// applying changes drains the queue before it returns.
type DarkSwitch struct {
	ctx  context.Context
	opts Options

	mu            sync.RWMutex
	mode          entity.Mode
	systemTheme   entity.SystemTheme
	ambientSeen   bool
	transitioning bool
	timer         port.Timer
	timerGen      uint64
	closed        bool

	// pending holds modes whose side effects are not applied yet.
	pending  []entity.Mode
	draining bool

	unsubscribe func()
	closeOnce   sync.Once
}

// NewDarkSwitch resolves the initial mode, applies it and starts observing
// the ambient preference.
//
// Initial mode priority: no environment -> DefaultDark; SyncWithSystem ->
// ambient reading; stored value -> stored value; otherwise DefaultDark.
func NewDarkSwitch(ctx context.Context, opts Options) *DarkSwitch {
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.ClassNameDark == "" {
		opts.ClassNameDark = DefaultClassNameDark
	}
	if opts.ClassNameLight == "" {
		opts.ClassNameLight = DefaultClassNameLight
	}
	switch {
	case opts.DisableTransition:
		opts.TransitionDuration = 0
	case opts.TransitionDuration <= 0:
		opts.TransitionDuration = DefaultTransitionDuration
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}

	env := opts.Environment
	if env == nil {
		s := &DarkSwitch{
			ctx:  logging.WithComponent(ctx, "darkswitch"),
			opts: opts,
			mode: entity.ModeFromDark(opts.DefaultDark),
		}
		logging.FromContext(s.ctx).Debug().
			Bool("is_dark", s.mode.IsDark()).
			Msg("no UI environment, using default mode")
		return s
	}

	// Notifications arriving while mounting are queued behind the mount.
	s := &DarkSwitch{
		ctx:      logging.WithComponent(ctx, "darkswitch"),
		opts:     opts,
		draining: true,
	}

	reading, readingOK := false, false
	if env.Preference != nil {
		s.unsubscribe = env.Preference.Subscribe(s.handleAmbientChange)
		reading, readingOK = env.Preference.PrefersDark()
	}

	initial := s.resolveInitialMode(reading, readingOK)

	s.mu.Lock()
	if env.Preference != nil && !s.ambientSeen {
		s.systemTheme = entity.SystemThemeFromReading(reading, readingOK)
	}
	if len(s.pending) == 0 {
		s.mode = initial
	}
	s.pending = append([]entity.Mode{initial}, s.pending...)
	systemTheme := s.systemTheme
	s.mu.Unlock()

	logging.FromContext(s.ctx).Debug().
		Bool("is_dark", initial.IsDark()).
		Str("system_theme", systemTheme.String()).
		Bool("sync_with_system", opts.SyncWithSystem).
		Msg("dark switch mounted")

	s.drain()
	return s
}

func (s *DarkSwitch) resolveInitialMode(reading, readingOK bool) entity.Mode {
	log := logging.FromContext(s.ctx)

	if s.opts.SyncWithSystem && readingOK {
		return entity.ModeFromDark(reading)
	}

	if s.opts.Store != nil {
		raw, found, err := s.opts.Store.GetItem(s.opts.StorageKey)
		switch {
		case err != nil:
			log.Debug().Err(err).Str("key", s.opts.StorageKey).Msg("failed to read stored mode")
		case found:
			if mode, ok := entity.ParseStoredMode(raw); ok {
				return mode
			}
			log.Debug().Str("key", s.opts.StorageKey).Str("value", raw).Msg("ignoring malformed stored mode")
		}
	}

	return entity.ModeFromDark(s.opts.DefaultDark)
}

// IsDark reports whether dark mode is active.
func (s *DarkSwitch) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode.IsDark()
}

// Mode returns the active mode.
func (s *DarkSwitch) Mode() entity.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SystemTheme returns the last observed ambient preference.
func (s *DarkSwitch) SystemTheme() entity.SystemTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.systemTheme
}

// IsTransitioning reports whether a mode change happened within the last
// TransitionDuration.
func (s *DarkSwitch) IsTransitioning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transitioning
}

// Snapshot returns mode, system theme and transition flag together.
func (s *DarkSwitch) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		IsDark:        s.mode.IsDark(),
		SystemTheme:   s.systemTheme,
		Transitioning: s.transitioning,
	}
}

// Options returns the effective options after defaulting.
func (s *DarkSwitch) Options() Options {
	return s.opts
}

// Toggle flips the mode.
func (s *DarkSwitch) Toggle() {
	s.mutate(entity.Mode.Opposite)
}

// Enable switches to dark mode.
func (s *DarkSwitch) Enable() {
	s.SetMode(true)
}

// Disable switches to light mode.
func (s *DarkSwitch) Disable() {
	s.SetMode(false)
}

// SetMode sets the mode. Setting the current mode again still runs the
// change pipeline.
func (s *DarkSwitch) SetMode(isDark bool) {
	next := entity.ModeFromDark(isDark)
	s.mutate(func(entity.Mode) entity.Mode { return next })
}

func (s *DarkSwitch) mutate(next func(entity.Mode) entity.Mode) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logging.FromContext(s.ctx).Debug().Msg("ignoring mode change on closed switch")
		return
	}
	s.mode = next(s.mode)
	run := s.enqueueLocked(s.mode)
	s.mu.Unlock()

	if run {
		s.drain()
	}
}

// handleAmbientChange receives ambient preference notifications. ok is
// false when the environment stopped reporting a preference; the mode is
// then left alone.
func (s *DarkSwitch) handleAmbientChange(prefersDark, ok bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.ambientSeen = true
	s.systemTheme = entity.SystemThemeFromReading(prefersDark, ok)
	follow := s.opts.SyncWithSystem && ok
	run := false
	if follow {
		s.mode = entity.ModeFromDark(prefersDark)
		run = s.enqueueLocked(s.mode)
	}
	s.mu.Unlock()

	logging.FromContext(s.ctx).Debug().
		Bool("prefers_dark", prefersDark).
		Bool("reading_ok", ok).
		Bool("sync_with_system", s.opts.SyncWithSystem).
		Msg("ambient color scheme changed")

	if run {
		s.drain()
	}
}

// enqueueLocked queues mode for the pipeline and reports whether the caller
// must drain the queue. Caller must hold s.mu.
func (s *DarkSwitch) enqueueLocked(mode entity.Mode) bool {
	s.pending = append(s.pending, mode)
	if s.draining {
		return false
	}
	s.draining = true
	return true
}

// drain runs the pipeline for every queued mode. Only the goroutine that set
// s.draining calls it.
func (s *DarkSwitch) drain() {
	for {
		s.mu.Lock()
		if s.closed || len(s.pending) == 0 {
			s.pending = nil
			s.draining = false
			s.mu.Unlock()
			return
		}
		mode := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.runPipeline(mode)
	}
}

// runPipeline applies the side effects of a mode change in order:
// callback, persistence, markers, transition flag.
// Caller must be draining and not hold s.mu.
func (s *DarkSwitch) runPipeline(mode entity.Mode) {
	log := logging.FromContext(s.ctx)

	if s.opts.OnChange != nil {
		s.opts.OnChange(mode.IsDark())
	}

	if s.opts.Store != nil {
		if err := s.opts.Store.SetItem(s.opts.StorageKey, mode.Serialize()); err != nil {
			log.Warn().Err(err).Str("key", s.opts.StorageKey).Msg("failed to persist mode")
		}
	}

	if env := s.opts.Environment; env != nil && env.Root != nil {
		add, remove := s.opts.ClassNameLight, s.opts.ClassNameDark
		if mode.IsDark() {
			add, remove = remove, add
		}
		env.Root.ReplaceMarker(remove, add)
	}

	if s.opts.TransitionDuration > 0 {
		s.startTransition()
	}

	log.Debug().Bool("is_dark", mode.IsDark()).Msg("mode applied")
}

// startTransition raises the transition flag and (re)schedules its expiry.
func (s *DarkSwitch) startTransition() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerGen++
	gen := s.timerGen
	s.transitioning = true
	s.timer = s.opts.Clock.AfterFunc(s.opts.TransitionDuration, func() {
		s.endTransition(gen)
	})
}

// endTransition lowers the flag unless a newer change rescheduled it.
func (s *DarkSwitch) endTransition(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.timerGen {
		return
	}
	s.transitioning = false
	s.timer = nil
}

// Close releases the ambient subscription, drops queued changes and cancels
// the pending transition. Later mutations and notifications are ignored.
func (s *DarkSwitch) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.pending = nil
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.timerGen++
		s.transitioning = false
		unsubscribe := s.unsubscribe
		s.unsubscribe = nil
		s.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}
		logging.FromContext(s.ctx).Debug().Msg("dark switch closed")
	})
}
