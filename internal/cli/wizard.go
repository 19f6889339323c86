package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// resisyncHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func resisyncHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// onboardingGoalOptions are the strategic goals offered during setup.
var onboardingGoalOptions = []string{
	"Stay Schengen-legal",
	"Minimize taxes",
	"Qualify for a residency visa",
	"Maximize travel flexibility",
}

// runOnboardingForm walks the user through initial profile setup.
func runOnboardingForm() (*domain.UserProfile, error) {
	var nationality, location string
	var goals []string

	goalOpts := make([]huh.Option[string], 0, len(onboardingGoalOptions))
	for _, g := range onboardingGoalOptions {
		goalOpts = append(goalOpts, huh.NewOption(g, g))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Passport nationality").
				Placeholder("e.g. US, German, Brazilian").
				Validate(requiredField("nationality")).
				Value(&nationality),
			huh.NewInput().
				Title("Current base").
				Placeholder("e.g. Lisbon, Portugal").
				Validate(requiredField("current base")).
				Value(&location),
			huh.NewMultiSelect[string]().
				Title("Strategic goals").
				Options(goalOpts...).
				Value(&goals),
		),
	).WithTheme(resisyncHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return &domain.UserProfile{
		Nationality:     nationality,
		CurrentLocation: location,
		TravelGoals:     goals,
	}, nil
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
