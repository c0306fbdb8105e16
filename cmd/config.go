package cmd

import (
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage timetable configuration",
	Long:  "View or edit your local settings: selected group, dark mode and the data base URL.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if group, _ := cmd.Flags().GetString("set-group"); group != "" {
			cfg.SelectedGroup = strings.ToUpper(strings.TrimSpace(group))
			changed = true
		}

		if cmd.Flags().Changed("dark") {
			dark, _ := cmd.Flags().GetBool("dark")
			cfg.DarkMode = dark
			changed = true
		}

		if base, _ := cmd.Flags().GetString("set-base-url"); base != "" {
			cfg.BaseURL = base
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-group", "s", "", "Set your default group (e.g. A)")
	configCmd.Flags().Bool("dark", false, "Enable or disable dark mode (--dark=false to disable)")
	configCmd.Flags().String("set-base-url", "", "Override the published data base URL")
}
