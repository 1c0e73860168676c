package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/darkswitch/internal/cli"
	"github.com/bnema/darkswitch/internal/domain/entity"
	"github.com/bnema/darkswitch/internal/infrastructure/config"
	"github.com/bnema/darkswitch/internal/logging"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

const watchLogFile = "watch.log"

var watchPrint bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the mode in sync until interrupted",
	Long: `Run the switch in the foreground.

The system color scheme is monitored (portal signals, gsettings monitor or
polling) and, with switch.sync_with_system, applied as it changes. Writes
to the JSON state file by other processes are picked up, and config edits
are reloaded live.

With --print, the active mode is printed on every change, one per line.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&watchPrint, "print", "p", false, "print the mode on every change")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.EnableFileLog(watchLogFile); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "watch")
	log := logging.FromContext(ctx)

	out := cmd.OutOrStdout()
	sw := a.NewSwitch(func(isDark bool) {
		log.Info().Str("mode", entity.ModeFromDark(isDark).String()).Msg("mode applied")
		if watchPrint {
			fmt.Fprintln(out, entity.ModeFromDark(isDark).String())
		}
	})
	defer sw.Close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.NewMonitor().Run(ctx)
	})

	if store := a.JSONStore(); store != nil {
		key := sw.Options().StorageKey
		g.Go(func() error {
			return store.Watch(ctx, key, func(value string, found bool) {
				applyStoredMode(ctx, sw, value, found)
			})
		})
	}

	g.Go(func() error {
		return watchConfig(ctx, a)
	})

	log.Info().Bool("is_dark", sw.IsDark()).Msg("watching")
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyStoredMode follows a value written to the state file by another
// process. Malformed values and values matching the current mode are ignored.
func applyStoredMode(ctx context.Context, sw *theme.DarkSwitch, value string, found bool) {
	log := logging.FromContext(ctx)
	if !found {
		return
	}
	mode, ok := entity.ParseStoredMode(value)
	if !ok {
		log.Debug().Str("value", value).Msg("ignoring malformed stored mode")
		return
	}
	if mode.IsDark() == sw.IsDark() {
		return
	}
	log.Debug().Str("mode", mode.String()).Msg("stored mode changed by another process")
	sw.SetMode(mode.IsDark())
}

func watchConfig(ctx context.Context, a *cli.App) error {
	log := logging.FromContext(ctx)

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.ApplyConfig(cfg)
		log.Info().Msg("config reloaded")
	})
	if err := a.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	<-ctx.Done()
	return nil
}
