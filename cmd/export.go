package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Muneer320/Class-Timetable/pkg/exporter"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a group's weekly schedule to an ICS file",
	Long:  `Export the schedule for a group to an .ics calendar file, projecting the weekly grid onto upcoming dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := resolveGroup(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		client := newClient(cmd)

		var gt *timetable.GroupTimetable
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting schedule for group %s to %s...", group, output)).
			Action(func() {
				gt, fetchErr = client.FetchGroup(group)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch schedule: %w", fetchErr)
		}

		if gt == nil || len(gt.Entries) == 0 {
			return fmt.Errorf("no classes found for group %s", group)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(gt, time.Now(), weeks, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d classes x %d week(s) to %s\n", len(gt.Entries), weeks, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("group", "g", "", "Group ID to export (e.g. A). Defaults to your saved group")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().IntP("weeks", "w", 4, "How many weeks ahead to project the schedule")
}
