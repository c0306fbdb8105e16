package cmd

import (
	"fmt"
	"os"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timetable",
	Short: "A CLI and TUI for the class timetable",
	Long: `timetable is a viewer for the published class schedule data.
It shows today's classes, the weekly grid and the course catalog for your
group, searches across all groups, and exports your schedule to an .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds a data client honoring the configured base URL and the
// global --refresh flag.
func newClient(cmd *cobra.Command) *timetable.Client {
	cfg, _ := config.Load()

	base := ""
	if cfg != nil {
		base = cfg.BaseURL
	}

	client := timetable.NewClientWithBase(base)
	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		client.SkipCache = true
	}
	return client
}

// resolveGroup picks the group from the flag or falls back to the saved
// preference.
func resolveGroup(cmd *cobra.Command) (string, error) {
	group, _ := cmd.Flags().GetString("group")
	if group != "" {
		return group, nil
	}

	cfg, err := config.Load()
	if err == nil && cfg.SelectedGroup != "" {
		return cfg.SelectedGroup, nil
	}

	return "", fmt.Errorf("no group selected. Pass --group or run 'timetable config --set-group <id>' first")
}

func init() {
	rootCmd.PersistentFlags().BoolP("refresh", "r", false, "Bypass the local cache and fetch fresh data")
}
