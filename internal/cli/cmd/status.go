package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/bnema/darkswitch/internal/cli"
	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/infrastructure/marker"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

var (
	statusJSON      bool
	statusDetectors bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current mode",
	Long: `Show the active mode, the system color scheme and where the mode is stored.

With --detectors, every system detector is listed with its answer.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print machine-readable JSON")
	statusCmd.Flags().BoolVarP(&statusDetectors, "detectors", "d", false, "list system detectors")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	sw := a.NewSwitch(nil)
	defer sw.Close()

	info := statusInfo(a, sw, statusDetectors)
	if statusJSON {
		out, err := statusToJSON(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStatusRenderer(a.Themes.For(info.IsDark)).Render(info))
	return nil
}

func statusInfo(a *cli.App, sw *theme.DarkSwitch, withDetectors bool) styles.StatusInfo {
	state := sw.Snapshot()
	info := styles.StatusInfo{
		IsDark:         state.IsDark,
		SystemTheme:    string(state.SystemTheme),
		SyncWithSystem: sw.Options().SyncWithSystem,
		StorageBackend: string(a.Config.Storage.Backend),
	}
	if a.Store != nil {
		info.StoragePath = a.Config.Storage.Path
	} else {
		info.StorageBackend = ""
	}
	if !a.Config.UI.Headless && a.Root != nil {
		info.Markers = a.Root.Markers()
	}
	if root, ok := a.Root.(*marker.FileRoot); ok {
		info.MarkerFile = root.Path()
	}
	if withDetectors {
		for _, r := range a.Resolver.Report() {
			info.Detectors = append(info.Detectors, styles.DetectorLine{
				Name:        r.Name,
				Priority:    r.Priority,
				Available:   r.Available,
				OK:          r.OK,
				PrefersDark: r.PrefersDark,
			})
		}
	}
	return info
}

type jsonField struct {
	path  string
	value any
}

type detectorJSON struct {
	Name        string `json:"name"`
	Priority    int    `json:"priority"`
	Available   bool   `json:"available"`
	OK          bool   `json:"ok"`
	PrefersDark bool   `json:"prefers_dark"`
}

func statusToJSON(info styles.StatusInfo) (string, error) {
	mode := "light"
	if info.IsDark {
		mode = "dark"
	}

	fields := []jsonField{
		{"mode", mode},
		{"is_dark", info.IsDark},
		{"system_theme", info.SystemTheme},
		{"sync_with_system", info.SyncWithSystem},
		{"storage.backend", info.StorageBackend},
		{"storage.path", info.StoragePath},
		{"markers", nonNil(info.Markers)},
	}
	if info.MarkerFile != "" {
		fields = append(fields, jsonField{"marker_file", info.MarkerFile})
	}
	if len(info.Detectors) > 0 {
		detectors := make([]detectorJSON, 0, len(info.Detectors))
		for _, d := range info.Detectors {
			detectors = append(detectors, detectorJSON(d))
		}
		fields = append(fields, jsonField{"detectors", detectors})
	}

	out := "{}"
	var err error
	for _, f := range fields {
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", fmt.Errorf("encode %s: %w", f.path, err)
		}
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
