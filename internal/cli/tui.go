package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/resisync/internal/repository"
)

// runTUI starts the interactive dashboard. First run walks through
// onboarding before the program opens, since analysis is meaningless
// without a profile.
func runTUI(app *App) error {
	ctx := context.Background()

	profile, err := app.Profile.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fmt.Println("Welcome to resisync. Let's set up your profile.")
		profile, err = runOnboardingForm()
		if err != nil {
			return err
		}
		if err := app.Profile.Onboard(ctx, profile, false); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	state := &SharedState{
		App:     app,
		Profile: profile,
	}

	p := tea.NewProgram(newAppModel(state), tea.WithAltScreen())
	state.Send = func(msg tea.Msg) { p.Send(msg) }

	_, err = p.Run()
	return err
}
