// Package cmd provides Cobra CLI commands for darkswitch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/darkswitch/internal/cli"
	"github.com/bnema/darkswitch/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "darkswitch",
		Short: "Dark and light mode switch that follows your desktop",
		Long: `darkswitch keeps a dark/light mode, persists it, and tags a marker
(a class name, optionally mirrored to a file) that styling code follows.

It can follow the system color scheme reported by the desktop portal,
gsettings, macOS defaults, the Windows registry, the terminal background
or environment variables.

Examples:
  darkswitch status            # Show the current mode
  darkswitch toggle            # Flip between dark and light
  darkswitch set dark          # Force dark mode
  darkswitch watch             # Follow system changes until interrupted
  darkswitch tui               # Interactive switch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// noAppAnnotation marks commands that run without loading config.
const noAppAnnotation = "darkswitch/no-app"

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return false
	}
	_, skip := cmd.Annotations[noAppAnnotation]
	return !skip
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/darkswitch/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
