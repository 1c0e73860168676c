package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const cssFilePerm = 0o644

var cssOutput string

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the stylesheet for the marker classes",
	Long: `Print CSS declaring the configured palettes as custom properties under
the light and dark marker classes, plus the transition rule.

Examples:
  darkswitch css                       # Print to stdout
  darkswitch css -o ~/.config/app.css  # Write to a file`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "write to file instead of stdout")
}

func runCSS(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	css := a.Styles.Stylesheet()
	if cssOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cssOutput), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(cssOutput, []byte(css), cssFilePerm); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
