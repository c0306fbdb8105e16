package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunSearchTUI is the live search view: queries are debounced, only the
// last pending one executes, and leaving the view clears all results so
// nothing stale is shown on re-entry.
func RunSearchTUI() error {
	cfg, _ := config.Load()
	client := newClient(cfg)

	var agg *timetable.TimetableResponse
	var fetchErr error

	_ = spinner.New().
		Title("Fetching the full timetable...").
		Action(func() {
			agg, fetchErr = client.FetchTimetable()
		}).
		Run()

	if fetchErr != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load the timetable: %v", fetchErr)))
		return nil
	}

	debouncer := timetable.NewDebouncer()
	defer func() {
		// Leaving the view: drop pending work and wipe displayed results
		debouncer.Cancel()
		sharedStore.ClearSearch()
	}()

	titler := cases.Title(language.English)

	for {
		var query, groupFilter string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search classes").
					Description("Course, instructor, room or code. Leave empty to go back.").
					Value(&query),
				huh.NewInput().
					Title("Group filter (optional)").
					Placeholder("e.g. A").
					Value(&groupFilter),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		if strings.TrimSpace(query) == "" {
			// "No query" is its own state: nothing searched, nothing shown
			return nil
		}

		token := sharedStore.Begin()
		done := make(chan struct{})

		debouncer.Trigger(func() {
			results, err := timetable.Search(agg, query, groupFilter)
			if err == nil || errors.Is(err, timetable.ErrNoQuery) {
				sharedStore.ApplySearch(token, results)
			}
			close(done)
		})
		// The next Trigger only happens after this callback completed,
		// which Trigger's contract requires of blocking callers
		<-done

		results, ok := sharedStore.SearchResults()
		if !ok {
			continue
		}

		if len(results) == 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("\nNo classes match '%s'.\n", query)))
			continue
		}

		fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🔍 %d result(s) for '%s' ---", len(results), query)))
		for _, r := range results {
			e := r.Entry
			fmt.Printf("[%s] %s %s - %s  %s (%s) — %s, %s\n",
				r.Group,
				titler.String(strings.ToLower(e.Day)),
				e.TimeSlot.StartTime, e.TimeSlot.EndTime,
				accentStyle.Bold(true).Render(e.Course.CourseName),
				e.Course.CourseCode,
				e.Course.Instructor, e.Room)
		}
		fmt.Println()
	}
}
