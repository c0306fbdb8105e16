package tui

import (
	"github.com/Muneer320/Class-Timetable/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks initially; GetTheme() rebuilds them from the
	// saved dark-mode preference.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// GetTheme loads the user's dark-mode preference and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()

	dark := false
	if err == nil && cfg != nil {
		dark = cfg.DarkMode
	}

	return GetCustomTheme(dark)
}

// GetCustomTheme returns a huh.Theme for the given mode. Dark mode uses a
// brighter accent that survives dark backgrounds; light mode a deeper one.
func GetCustomTheme(dark bool) *huh.Theme {
	accent := "25" // deep blue for light terminals
	if dark {
		accent = "39" // bright blue for dark terminals
	}
	p := lipgloss.Color(accent)

	// Update the global styles so manual CLI print statements also receive
	// the palette
	accentStyle = lipgloss.NewStyle().Foreground(p)

	t := huh.ThemeCharm()

	// Inject the accent into the active inputs, cursors, borders, and buttons
	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI() error {
	for {
		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📅 Today's Classes", "today"),
						huh.NewOption("🗓️ Weekly Schedule", "week"),
						huh.NewOption("🔍 Search Classes", "search"),
						huh.NewOption("📚 Course Catalog", "catalog"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🚪 Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "today":
			err = RunTodayTUI()
		case "week":
			err = RunWeekTUI()
		case "search":
			err = RunSearchTUI()
		case "catalog":
			err = RunCatalogTUI()
		case "config":
			err = RunConfigTUI()
		default:
			return nil
		}

		if err != nil {
			return err
		}
	}
}
