package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/trigger"
)

// analysisDebounce is the quiet period between the last trip edit and
// the analysis request it triggers.
const analysisDebounce = 2 * time.Second

// analysisDueMsg fires when the debounce quiet period elapses.
type analysisDueMsg struct {
	seq uint64
}

// analysisRetryMsg signals that the primary model failed and the
// fallback tier is being tried.
type analysisRetryMsg struct {
	seq uint64
}

// analysisResultMsg carries a finished analysis. Results for a sequence
// older than the latest edit are stale and must be dropped.
type analysisResultMsg struct {
	seq    uint64
	status *domain.ComplianceStatus
}

// insightResultMsg carries a fetched destination brief.
type insightResultMsg struct {
	country string
	text    string
}

// dashboardView is the home view: allowance meter, trip log, tax
// exposure and the model's recommendation.
type dashboardView struct {
	state *SharedState

	trips  []*domain.Trip // real + overlay, as analyzed
	cursor int

	status    *domain.ComplianceStatus
	analyzing bool
	retrying  bool

	// Debounce state. lastStartedSeq suppresses the duplicate due
	// message when an analysis was already started for that sequence.
	debouncer      *trigger.Debouncer
	lastStartedSeq uint64

	insightCountry string
	insightText    string
	loadingInsight bool

	errText string
}

func newDashboardView(state *SharedState) *dashboardView {
	v := &dashboardView{state: state}
	v.debouncer = trigger.NewDebouncer(analysisDebounce, func(seq uint64) {
		state.post(analysisDueMsg{seq: seq})
	})
	return v
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *dashboardView) Init() tea.Cmd {
	v.reload()
	// First analysis runs immediately; the debouncer's own timer for
	// this sequence is deduped by lastStartedSeq.
	return v.startAnalysis(v.debouncer.Notify())
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case refreshViewMsg:
		v.reload()
		v.debouncer.Notify()
		v.analyzing = true
		return v, nil

	case analysisDueMsg:
		if msg.seq <= v.lastStartedSeq {
			return v, nil
		}
		return v, v.startAnalysis(msg.seq)

	case analysisRetryMsg:
		if msg.seq == v.debouncer.Seq() {
			v.retrying = true
		}
		return v, nil

	case analysisResultMsg:
		if msg.seq != v.debouncer.Seq() {
			// Overtaken by a later edit; a fresh run is coming.
			return v, nil
		}
		v.status = msg.status
		v.analyzing = false
		v.retrying = false
		return v, nil

	case insightResultMsg:
		v.loadingInsight = false
		v.insightCountry = msg.country
		v.insightText = msg.text
		return v, nil
	}

	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.trips)-1 {
			v.cursor++
		}
	case "a":
		return v, pushView(newTripFormView(v.state, false))
	case "s":
		return v, pushView(newTripFormView(v.state, true))
	case "S":
		if v.state.App.Simulation.Active() {
			v.state.App.Simulation.Clear()
			return v, func() tea.Msg { return refreshViewMsg{} }
		}
	case "d":
		if t := v.selectedTrip(); t != nil && !t.IsSimulation {
			if err := v.state.App.Trips.Delete(context.Background(), t.ID); err != nil {
				v.errText = err.Error()
				return v, nil
			}
			return v, func() tea.Msg { return refreshViewMsg{} }
		}
	case "c":
		return v, pushView(newChatView(v.state))
	case "i":
		if t := v.selectedTrip(); t != nil && !v.loadingInsight {
			v.loadingInsight = true
			return v, v.fetchInsight(t.Country)
		}
	case "r":
		v.analyzing = true
		return v, v.startAnalysis(v.debouncer.Notify())
	}
	return v, nil
}

func (v *dashboardView) View() string {
	var b strings.Builder

	if v.analyzing {
		b.WriteString(formatter.Dim("Analyzing travel schedule..."))
		if v.retrying {
			b.WriteString("  " + formatter.StyleYellow.Render("primary model busy, retrying"))
		}
		b.WriteString("\n\n")
	} else if v.status != nil {
		b.WriteString(formatter.FormatComplianceStatus(v.status))
		b.WriteString("\n")
	}

	if v.state.App.Simulation.Active() {
		b.WriteString(formatter.StylePurple.Render("SIMULATION ACTIVE") +
			formatter.Dim(" — hypothetical trips included, nothing saved"))
		b.WriteString("\n\n")
	}

	b.WriteString(formatter.Header("Trips"))
	b.WriteString("\n")
	if len(v.trips) == 0 {
		b.WriteString(formatter.Dim("No trips yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.renderTrips())
	}

	if v.insightText != "" {
		b.WriteString("\n")
		b.WriteString(formatter.Header(v.insightCountry))
		b.WriteString("\n")
		b.WriteString(formatter.RenderMarkdown(v.insightText, max(v.state.Width-4, 40)))
	} else if v.loadingInsight {
		b.WriteString("\n" + formatter.Dim("Fetching destination brief..."))
	}

	if v.errText != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.errText))
	}

	return b.String()
}

func (v *dashboardView) renderTrips() string {
	var b strings.Builder
	for i, t := range v.trips {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
		}
		line := t.Country
		if badge := formatter.SimBadge(t); badge != "" {
			line += " " + badge
		}
		line += "  " + formatter.Dim(formatter.DateRange(t.StartDate, t.EndDate))
		if t.IsSchengen {
			line += "  " + formatter.SchengenBadge(t)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }
func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add trip")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "simulate")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insights")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ── data and async work ──────────────────────────────────────────────────────

func (v *dashboardView) reload() {
	real, err := v.state.App.Trips.List(context.Background())
	if err != nil {
		v.errText = err.Error()
		return
	}
	v.errText = ""
	v.trips = v.state.App.Simulation.Merged(real)
	if v.cursor >= len(v.trips) {
		v.cursor = max(len(v.trips)-1, 0)
	}
}

func (v *dashboardView) selectedTrip() *domain.Trip {
	if v.cursor < 0 || v.cursor >= len(v.trips) {
		return nil
	}
	return v.trips[v.cursor]
}

// startAnalysis launches one analysis run for seq. The retry hook and
// the result both carry seq so stale ones can be identified.
func (v *dashboardView) startAnalysis(seq uint64) tea.Cmd {
	v.lastStartedSeq = seq
	v.analyzing = true

	trips := v.trips
	profile := v.state.Profile
	app := v.state.App
	post := v.state.post

	return func() tea.Msg {
		status := app.Compliance.Analyze(context.Background(), trips, profile, func() {
			post(analysisRetryMsg{seq: seq})
		})
		return analysisResultMsg{seq: seq, status: status}
	}
}

func (v *dashboardView) fetchInsight(country string) tea.Cmd {
	app := v.state.App
	profile := v.state.Profile
	return func() tea.Msg {
		text := app.Insights.DestinationInsights(context.Background(), country, profile)
		return insightResultMsg{country: country, text: text}
	}
}
