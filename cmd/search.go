package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search classes across all groups",
	Long:  "Match the query against course names, instructors, rooms and course codes in every group's schedule.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		groupFilter, _ := cmd.Flags().GetString("group")

		client := newClient(cmd)

		var agg *timetable.TimetableResponse
		var fetchErr error

		_ = spinner.New().
			Title("Fetching the full timetable...").
			Action(func() {
				agg, fetchErr = client.FetchTimetable()
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch timetable: %w", fetchErr)
		}

		results, err := timetable.Search(agg, query, groupFilter)
		if errors.Is(err, timetable.ErrNoQuery) {
			return fmt.Errorf("search query can not be empty")
		}
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Printf("No classes match '%s'.\n", query)
			return nil
		}

		fmt.Printf("\n--- 🔍 %d result(s) for '%s' ---\n", len(results), query)
		// Stored day names have no guaranteed casing; normalize for display
		titler := cases.Title(language.English)
		for _, r := range results {
			e := r.Entry
			fmt.Printf("[%s] %s %s - %s  \033[1m%s\033[0m (%s) — %s, %s\n",
				r.Group, titler.String(strings.ToLower(e.Day)),
				e.TimeSlot.StartTime, e.TimeSlot.EndTime,
				e.Course.CourseName, e.Course.CourseCode,
				e.Course.Instructor, e.Room)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("group", "g", "", "Limit results to one group")
}
