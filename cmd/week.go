package cmd

import (
	"fmt"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the full Monday-Friday schedule for your group",
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := resolveGroup(cmd)
		if err != nil {
			return err
		}

		client := newClient(cmd)

		var gt *timetable.GroupTimetable
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching timetable for group %s...", group)).
			Action(func() {
				gt, fetchErr = client.FetchGroup(group)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch group %s: %w", group, fetchErr)
		}

		fmt.Printf("\n--- 🗓  Weekly Schedule, Group %s ---\n", gt.Group)

		for _, day := range timetable.WeeklyView(gt) {
			fmt.Printf("\n\033[1m%s\033[0m (%d classes)\n", day.Day, len(day.Entries))
			if len(day.Entries) == 0 {
				fmt.Println("  —")
				continue
			}
			for _, e := range day.Entries {
				fmt.Printf("  [%s - %s] %s (%s) — %s, %s\n",
					e.TimeSlot.StartTime, e.TimeSlot.EndTime,
					e.Course.CourseName, e.EntryType,
					e.Course.Instructor, e.Room)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringP("group", "g", "", "Group ID (e.g. A). Defaults to your saved group")
}
