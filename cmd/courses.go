package cmd

import (
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course catalog",
	Long:  "Show one card per course with its groups, credits and every scheduled slot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient(cmd)

		var catalog *timetable.CoursesResponse
		var fetchErr error

		_ = spinner.New().
			Title("Fetching the course catalog...").
			Action(func() {
				catalog, fetchErr = client.FetchCourses()
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch courses: %w", fetchErr)
		}

		if len(catalog.Courses) == 0 {
			fmt.Println("The course catalog is empty.")
			return nil
		}

		for _, c := range catalog.Courses {
			fmt.Printf("\n\033[1m%s\033[0m (%s) — %s, %d credits\n",
				c.CourseName, c.CourseCode, c.Instructor, c.Credits)
			fmt.Printf("  Groups: %s\n", strings.Join(c.Groups, ", "))
			for _, slot := range c.Schedule {
				fmt.Printf("  • [%s] %s %s — %s (%s)\n",
					slot.Group, slot.Day, slot.Time, slot.Room, slot.Type)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
