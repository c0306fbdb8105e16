package cmd

import (
	"fmt"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's classes for your group",
	Long:  "List today's classes in timetable order, mark the one running right now, and point out the next one.",
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

		day := timetable.CurrentWeekdayName()
		todays := timetable.TodaysClasses(gt, day)

		fmt.Printf("\n--- 📅 %s, Group %s (now %s) ---\n", day, gt.Group, timetable.CurrentClockString())

		if len(todays) == 0 {
			fmt.Println("No classes today. 🎉")
			return nil
		}

		for _, e := range todays {
			marker := "  "
			if timetable.IsActiveNow(e.TimeSlot.StartTime, e.TimeSlot.EndTime) {
				marker = "▶ "
			}
			fmt.Printf("%s[%s - %s] \033[1m%s\033[0m (%s) — %s, %s\n",
				marker,
				e.TimeSlot.StartTime, e.TimeSlot.EndTime,
				e.Course.CourseName, e.EntryType,
				e.Course.Instructor, e.Room)
		}

		if next, ok := timetable.NextClassNow(todays); ok {
			fmt.Printf("\n⏭  Next up: %s at %s in %s\n", next.Course.CourseName, next.TimeSlot.StartTime, next.Room)
		} else {
			fmt.Println("\nNo more classes today.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringP("group", "g", "", "Group ID (e.g. A). Defaults to your saved group")
}
