package tui

import (
	"fmt"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/config"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Default Group", "group"),
						huh.NewOption("Toggle Dark Mode", "dark"),
						huh.NewOption("Set Data Source URL", "baseurl"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "group" {
			err = runSetGroupTUI(cfg)
		} else if action == "dark" {
			err = runToggleDarkModeTUI(cfg)
		} else if action == "baseurl" {
			err = runSetBaseURLTUI(cfg)
		} else if action == "courses" {
			err = runSetSavedCoursesTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.timetable.json) ---"))
			if cfg.SelectedGroup == "" {
				fmt.Println("Default Group: Not set")
			} else {
				fmt.Printf("Default Group: %s\n", cfg.SelectedGroup)
			}

			fmt.Printf("Dark Mode: %t\n", cfg.DarkMode)
			if cfg.BaseURL == "" {
				fmt.Println("Data Source: built-in default")
			} else {
				fmt.Printf("Data Source: %s\n", cfg.BaseURL)
			}
			fmt.Printf("Saved Courses: %d\n", len(cfg.SavedCourses))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetGroupTUI(cfg *config.AppConfig) error {
	client := newClient(cfg)
	var meta *timetable.Metadata
	var err error

	_ = spinner.New().
		Title("Fetching the list of available groups...").
		Action(func() {
			meta, err = client.FetchMetadata()
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch group list: %w", err)
	}

	var groupOptions []huh.Option[string]
	for _, g := range meta.Groups {
		opt := huh.NewOption(fmt.Sprintf("Group %s", g), g)
		if strings.EqualFold(g, cfg.SelectedGroup) {
			opt = opt.Selected(true)
		}
		groupOptions = append(groupOptions, opt)
	}

	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default group").
				Options(groupOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SelectedGroup = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default group changed to: %s\n", selected)))
	return nil
}

func runToggleDarkModeTUI(cfg *config.AppConfig) error {
	var dark bool = cfg.DarkMode

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use the dark color scheme?").
				Affirmative("Dark").
				Negative("Light").
				Value(&dark),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DarkMode = dark
	if err := config.Save(cfg); err != nil {
		return err
	}

	mode := "light"
	if dark {
		mode = "dark"
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Switched to the %s theme.\n", mode)))
	return nil
}

func runSetBaseURLTUI(cfg *config.AppConfig) error {
	var input string = cfg.BaseURL

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the timetable data source URL").
				Description("Leave empty to use the built-in default.").
				Placeholder("https://example.github.io/timetable/data").
				Value(&input).
				Validate(func(str string) error {
					if str != "" && !strings.HasPrefix(str, "http://") && !strings.HasPrefix(str, "https://") {
						return fmt.Errorf("must start with http:// or https://")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	cfg.BaseURL = strings.TrimRight(input, "/")
	if err := config.Save(cfg); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		fmt.Println(accentStyle.Render("\n✅ Reset to the built-in data source.\n"))
	} else {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Data source changed to: %s\n", cfg.BaseURL)))
	}
	return nil
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
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
		return fmt.Errorf("failed to fetch course catalog: %w", fetchErr)
	}

	if len(catalog.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found in the published catalog!"))
		return nil
	}

	existingMap := make(map[string]bool)
	for _, code := range cfg.SavedCourses {
		existingMap[strings.ToUpper(code)] = true
	}

	var courseOptions []huh.Option[string]
	for _, c := range catalog.Courses {
		opt := huh.NewOption(fmt.Sprintf("%s — %s", c.CourseCode, c.CourseName), c.CourseCode)
		if existingMap[strings.ToUpper(c.CourseCode)] {
			opt = opt.Selected(true)
		}
		courseOptions = append(courseOptions, opt)
	}

	var selectedCourses []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your active courses").
				Description("These are pinned to the top of the catalog view.\nSpace = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedCourses).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = selectedCourses
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d courses.\n", len(selectedCourses))))
	return nil
}
