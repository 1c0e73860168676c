package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/darkswitch/internal/cli/model"
	"github.com/bnema/darkswitch/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dark/light switch",
	Long: `Open an interactive switch.

The view follows the active palette and updates when the system color
scheme changes.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(a.Ctx())
	defer cancel()
	ctx = logging.WithComponent(ctx, "tui")

	changes := make(chan bool, 1)
	sw := a.NewSwitch(func(isDark bool) {
		select {
		case changes <- isDark:
		default:
		}
	})
	defer sw.Close()

	go func() {
		if err := a.NewMonitor().Run(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("color scheme monitor stopped")
		}
	}()

	m := model.NewSwitchModel(ctx, sw, a.Root, a.Themes, changes)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
