package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/domain/entity"
	"github.com/bnema/darkswitch/internal/logging"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

var quietMode bool

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between dark and light mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return changeMode(cmd.OutOrStdout(), (*theme.DarkSwitch).Toggle)
	},
}

var enableCmd = &cobra.Command{
	Use:     "enable",
	Aliases: []string{"dark", "on"},
	Short:   "Switch to dark mode",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return changeMode(cmd.OutOrStdout(), (*theme.DarkSwitch).Enable)
	},
}

var disableCmd = &cobra.Command{
	Use:     "disable",
	Aliases: []string{"light", "off"},
	Short:   "Switch to light mode",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return changeMode(cmd.OutOrStdout(), (*theme.DarkSwitch).Disable)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <dark|light|true|false>",
	Short: "Set the mode explicitly",
	Long: `Set the mode explicitly.

Accepted values: dark, light, true, false, on, off, 1, 0.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light", "true", "false"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := entity.ParseModeName(args[0])
		if err != nil {
			return err
		}
		return changeMode(cmd.OutOrStdout(), func(sw *theme.DarkSwitch) {
			sw.SetMode(mode.IsDark())
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{toggleCmd, enableCmd, disableCmd, setCmd} {
		c.Flags().BoolVarP(&quietMode, "quiet", "q", false, "print nothing")
		rootCmd.AddCommand(c)
	}
}

// changeMode applies change to a fresh switch and reports the result.
func changeMode(out io.Writer, change func(*theme.DarkSwitch)) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	sw := a.NewSwitch(nil)
	defer sw.Close()

	before := sw.IsDark()
	change(sw)
	after := sw.IsDark()

	logging.FromContext(a.Ctx()).Debug().
		Bool("before", before).
		Bool("after", after).
		Msg("mode changed")

	if quietMode {
		return nil
	}
	badge := styles.NewStatusRenderer(a.Themes.For(after)).ModeBadge(after)
	fmt.Fprintln(out, badge)
	return nil
}
