package tui

import (
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
)

// RunCatalogTUI lists every course offered across all groups, with the
// user's saved courses (if any) shown first.
func RunCatalogTUI() error {
	cfg, _ := config.Load()
	client := newClient(cfg)

	var catalog *timetable.CoursesResponse
	var fetchErr error

	_ = spinner.New().
		Title("Fetching the course catalog...").
		Action(func() {
			catalog, fetchErr = client.FetchCourses()
		}).
		Run()

	if fetchErr != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load the course catalog: %v", fetchErr)))
		return nil
	}

	// An unreadable config only costs the saved-courses pinning
	saved := make(map[string]bool)
	if cfg != nil {
		for _, code := range cfg.SavedCourses {
			saved[strings.ToUpper(code)] = true
		}
	}

	var pinned, rest []timetable.Course
	for _, c := range catalog.Courses {
		if saved[strings.ToUpper(c.CourseCode)] {
			pinned = append(pinned, c)
		} else {
			rest = append(rest, c)
		}
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 📚 Course Catalog (%d courses) ---\n", len(catalog.Courses))))

	if len(pinned) > 0 {
		fmt.Println(accentStyle.Render("⭐ Saved courses"))
		for _, c := range pinned {
			printCourse(c)
		}
		fmt.Println()
	}

	for _, c := range rest {
		printCourse(c)
	}
	fmt.Println()

	return nil
}

func printCourse(c timetable.Course) {
	fmt.Printf("%s  %s — %s (%d credits)\n",
		accentStyle.Bold(true).Render(c.CourseCode),
		c.CourseName, c.Instructor, c.Credits)
	for _, s := range c.Schedule {
		fmt.Printf("    %s %s · Group %s · %s\n", s.Day, s.Time, s.Group, s.Room)
	}
}
