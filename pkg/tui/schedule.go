package tui

import (
	"fmt"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// newClient builds a data client honoring the configured base URL.
func newClient(cfg *config.AppConfig) *timetable.Client {
	base := ""
	if cfg != nil {
		base = cfg.BaseURL
	}
	return timetable.NewClientWithBase(base)
}

// pickGroup returns the saved group or asks for one, offering the
// identifiers the published metadata knows about.
func pickGroup(cfg *config.AppConfig, client *timetable.Client) (string, error) {
	if cfg != nil && cfg.SelectedGroup != "" {
		return cfg.SelectedGroup, nil
	}

	var md *timetable.Metadata
	var err error

	_ = spinner.New().
		Title("Fetching available groups...").
		Action(func() {
			md, err = client.FetchMetadata()
		}).
		Run()

	if err != nil {
		return "", fmt.Errorf("failed to fetch groups: %w", err)
	}

	var options []huh.Option[string]
	for _, g := range md.Groups {
		options = append(options, huh.NewOption("Group "+g, g))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your group").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// fetchGroupGuarded fetches a group dataset through the store, so only the
// most recently requested view's data can reach the display.
func fetchGroupGuarded(store *timetable.Store, client *timetable.Client, group string) (*timetable.GroupTimetable, error) {
	token := store.Begin()

	var gt *timetable.GroupTimetable
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching timetable for group %s...", group)).
		Action(func() {
			gt, fetchErr = client.FetchGroup(group)
		}).
		Run()

	if !store.ApplyGroup(token, gt, fetchErr) {
		// A newer request took over while this one was in flight
		return nil, nil
	}
	return store.Group()
}

// sharedStore is the single state container behind all interactive views.
var sharedStore = timetable.NewStore()

// RunTodayTUI shows today's classes for the selected group
func RunTodayTUI() error {
	cfg, _ := config.Load()
	client := newClient(cfg)

	group, err := pickGroup(cfg, client)
	if err != nil {
		return err
	}

	gt, err := fetchGroupGuarded(sharedStore, client, group)
	if err != nil {
		// Fetch problems collapse to an empty view with a diagnostic line
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load group %s: %v", group, err)))
		fmt.Println(dimStyle.Render("Showing no classes. Try again with a network connection."))
		return nil
	}
	if gt == nil {
		return nil
	}

	day := timetable.CurrentWeekdayName()
	todays := timetable.TodaysClasses(gt, day)

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 📅 %s, Group %s (now %s) ---", day, gt.Group, timetable.CurrentClockString())))

	if len(todays) == 0 {
		fmt.Println("No classes today. 🎉")
		return nil
	}

	for _, e := range todays {
		line := fmt.Sprintf("[%s - %s] %s (%s) — %s, %s",
			e.TimeSlot.StartTime, e.TimeSlot.EndTime,
			e.Course.CourseName, e.EntryType,
			e.Course.Instructor, e.Room)

		if timetable.IsActiveNow(e.TimeSlot.StartTime, e.TimeSlot.EndTime) {
			fmt.Println(accentStyle.Render("▶ " + line + "  (live)"))
		} else {
			fmt.Println("  " + line)
		}
	}

	if next, ok := timetable.NextClassNow(todays); ok {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n⏭  Next up: %s at %s in %s", next.Course.CourseName, next.TimeSlot.StartTime, next.Room)))
	} else {
		fmt.Println(dimStyle.Render("\nNo more classes today."))
	}
	fmt.Println()

	return nil
}

// RunWeekTUI shows the Monday-Friday grid for the selected group
func RunWeekTUI() error {
	cfg, _ := config.Load()
	client := newClient(cfg)

	group, err := pickGroup(cfg, client)
	if err != nil {
		return err
	}

	gt, err := fetchGroupGuarded(sharedStore, client, group)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load group %s: %v", group, err)))
		return nil
	}
	if gt == nil {
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🗓  Weekly Schedule, Group %s ---", gt.Group)))

	for _, day := range timetable.WeeklyView(gt) {
		fmt.Printf("\n%s (%d classes)\n", accentStyle.Bold(true).Render(day.Day), len(day.Entries))
		if len(day.Entries) == 0 {
			fmt.Println(dimStyle.Render("  —"))
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
}
