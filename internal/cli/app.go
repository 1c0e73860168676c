// Package cli wires configuration, storage and system detection into the
// dark switch for the darkswitch commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/domain/build"
	"github.com/bnema/darkswitch/internal/infrastructure/colorscheme"
	"github.com/bnema/darkswitch/internal/infrastructure/config"
	"github.com/bnema/darkswitch/internal/infrastructure/env"
	"github.com/bnema/darkswitch/internal/infrastructure/marker"
	"github.com/bnema/darkswitch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/darkswitch/internal/infrastructure/storage"
	"github.com/bnema/darkswitch/internal/logging"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

const minPollInterval = time.Second

// Options configures NewApp.
type Options struct {
	// ConfigFile replaces the XDG config lookup when set.
	ConfigFile string
	// LogWriter overrides stderr, mainly for tests.
	LogWriter io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Themes        styles.Themes
	Styles        *theme.Manager
	BuildInfo     build.Info

	Resolver *colorscheme.Resolver
	Store    port.ModeStore
	Root     port.MarkerRoot

	configAdapter *colorscheme.ConfigAdapter
	jsonStore     *storage.JSONFileStore
	db            *sqlite.LazyDB
	logWriter     io.Writer

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and creates every dependency of the switch.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = os.Stderr
	}
	logger := newLogger(cfg, logWriter)
	ctx := logging.WithContext(context.Background(), logger)

	a := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Themes:        styles.NewThemes(cfg),
		Styles:        theme.NewManager(ctx, cfg),
		logWriter:     logWriter,
		ctx:           ctx,
	}

	if err := a.openStore(); err != nil {
		return nil, err
	}

	a.configAdapter = colorscheme.NewConfigAdapter(cfg)
	a.Resolver = colorscheme.NewDefaultResolver(a.configAdapter)

	if err := a.openRoot(); err != nil {
		_ = a.Close()
		return nil, err
	}

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("storage", string(cfg.Storage.Backend)).
		Bool("headless", cfg.UI.Headless).
		Strs("desktop", env.Desktop()).
		Bool("flatpak", env.IsFlatpak()).
		Msg("app initialized")
	return a, nil
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Logging.Level)
	lc.TimeFormat = "15:04:05"
	if cfg.Logging.Format == "json" {
		lc.Format = "json"
	}
	return logging.NewWithWriter(lc, w)
}

func (a *App) openStore() error {
	cfg := a.Config
	switch cfg.Storage.Backend {
	case config.StorageJSON:
		store, err := storage.NewJSONFileStore(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("open json store: %w", err)
		}
		a.jsonStore = store
		a.Store = store
	case config.StorageSQLite:
		a.db = sqlite.NewLazyDB(cfg.Storage.Path)
		a.Store = sqlite.NewPreferenceStore(a.ctx, a.db)
	case config.StorageMemory:
		a.Store = storage.NewMemoryStore()
	case config.StorageNone:
		a.Store = nil
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return nil
}

func (a *App) openRoot() error {
	if a.Config.Marker.File == "" {
		a.Root = marker.NewClassList()
		return nil
	}
	root, err := marker.NewFileRoot(a.ctx, a.Config.Marker.File)
	if err != nil {
		return fmt.Errorf("open marker file: %w", err)
	}
	a.Root = root
	return nil
}

// NewSwitch creates a dark switch from the current config. onChange may be nil.
// Headless mode runs the switch without an environment.
func (a *App) NewSwitch(onChange func(isDark bool)) *theme.DarkSwitch {
	opts := theme.OptionsFromConfig(a.Config)
	opts.Store = a.Store
	opts.OnChange = onChange
	if !a.Config.UI.Headless {
		opts.Environment = &theme.Environment{
			Root:       a.Root,
			Preference: a.Resolver,
		}
	}
	return theme.NewDarkSwitch(a.ctx, opts)
}

// NewMonitor creates the system color scheme monitor.
func (a *App) NewMonitor() *colorscheme.Monitor {
	interval := time.Duration(a.Config.System.PollIntervalMs) * time.Millisecond
	if interval > 0 && interval < minPollInterval {
		interval = minPollInterval
	}
	return colorscheme.NewMonitor(a.Resolver, interval)
}

// JSONStore returns the JSON file store, or nil for other backends.
func (a *App) JSONStore() *storage.JSONFileStore {
	return a.jsonStore
}

// ApplyConfig updates the parts of the app that follow config reloads.
// Switch options are fixed once a switch is created.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.configAdapter.Update(cfg)
	a.Styles.UpdateFromConfig(a.ctx, cfg)
	a.Themes = styles.NewThemes(cfg)
	a.Resolver.Refresh()
}

// EnableFileLog tees the logger into a rotating file under the log dir when
// file logging is enabled in config.
func (a *App) EnableFileLog(fileName string) error {
	lc := a.Config.Logging
	if !lc.EnableFileLog {
		return nil
	}

	file, err := logging.NewRotatingFile(logging.RotateConfig{
		Dir:        lc.LogDir,
		FileName:   fileName,
		MaxSize:    int64(lc.MaxSizeMB) * 1024 * 1024,
		MaxBackups: lc.MaxBackups,
		MaxAge:     time.Duration(lc.MaxAge) * 24 * time.Hour,
		Compress:   lc.Compress,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	// The file always gets JSON lines.
	logger := zerolog.New(zerolog.MultiLevelWriter(
		consoleWriter(lc.Format, a.logWriter),
		file,
	)).Level(logging.ParseLevel(lc.Level)).With().Timestamp().Logger()

	a.ctx = logging.WithContext(a.ctx, logger)
	a.logCleanup = func() { _ = file.Close() }
	logger.Debug().Str("dir", lc.LogDir).Str("file", fileName).Msg("file logging enabled")
	return nil
}

func consoleWriter(format string, w io.Writer) io.Writer {
	if format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
