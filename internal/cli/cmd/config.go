package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/darkswitch/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.ConfigManager.GetConfigFile())
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of the config file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{noAppAnnotation: ""},
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the config file and report problems",
	Long: `Load the config file with environment overrides applied.

Loading already validates, so reaching this command means the file is
valid; the effective storage and marker settings are printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		cfg := a.Config
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:  %s\n", a.ConfigManager.GetConfigFile())
		fmt.Fprintf(out, "storage: %s %s\n", cfg.Storage.Backend, cfg.Storage.Path)
		fmt.Fprintf(out, "classes: %s / %s\n", cfg.Switch.ClassNameLight, cfg.Switch.ClassNameDark)
		if cfg.Marker.File != "" {
			fmt.Fprintf(out, "marker:  %s\n", cfg.Marker.File)
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configValidateCmd)
}
