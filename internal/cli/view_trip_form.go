package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/service"
)

// tripFormView collects a trip via an embedded huh form. In simulation
// mode the trip is staged on the overlay instead of saved.
type tripFormView struct {
	state      *SharedState
	form       *huh.Form
	simulation bool

	country, code, start, end, notes string

	errText string
}

func newTripFormView(state *SharedState, simulation bool) *tripFormView {
	v := &tripFormView{state: state, simulation: simulation}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Country").
				Placeholder("e.g. Spain").
				Suggestions(domain.SchengenCountries).
				Validate(requiredField("country")).
				Value(&v.country),
			huh.NewInput().
				Title("Country code").
				Placeholder("e.g. ES (optional)").
				Value(&v.code),
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Validate(validDate).
				Value(&v.start),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Validate(validDate).
				Value(&v.end),
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				Value(&v.notes),
		),
	).WithTheme(resisyncHuhTheme()).WithShowHelp(false)

	return v
}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *tripFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *tripFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		if err := v.submit(); err != nil {
			v.errText = err.Error()
			return v, nil
		}
		return v, popAndRefresh()
	}
	if v.form.State == huh.StateAborted {
		return v, popView()
	}

	return v, cmd
}

func (v *tripFormView) submit() error {
	startDate, err := time.Parse(domain.DateLayout, strings.TrimSpace(v.start))
	if err != nil {
		return fmt.Errorf("invalid start date %q", v.start)
	}
	endDate, err := time.Parse(domain.DateLayout, strings.TrimSpace(v.end))
	if err != nil {
		return fmt.Errorf("invalid end date %q", v.end)
	}

	params := service.CreateTripParams{
		Country:     strings.TrimSpace(v.country),
		CountryCode: strings.ToUpper(strings.TrimSpace(v.code)),
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       strings.TrimSpace(v.notes),
	}

	if v.simulation {
		_, err = v.state.App.Simulation.Add(params)
		return err
	}
	_, err = v.state.App.Trips.Create(context.Background(), params)
	return err
}

func (v *tripFormView) View() string {
	var b strings.Builder
	if v.simulation {
		b.WriteString(formatter.StylePurple.Render("Stage a hypothetical trip"))
	} else {
		b.WriteString(formatter.Bold("Add a trip"))
	}
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	if v.errText != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.errText))
	}
	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *tripFormView) ID() ViewID { return ViewTripForm }
func (v *tripFormView) Title() string {
	if v.simulation {
		return "Simulate"
	}
	return "Add Trip"
}
func (v *tripFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
