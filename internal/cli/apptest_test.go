package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/intelligence"
	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/alexanderramin/resisync/internal/service"
	"github.com/alexanderramin/resisync/internal/testutil"
)

// Scriptable intelligence stubs for command and view tests.

type stubCompliance struct {
	status   *domain.ComplianceStatus
	retries  bool
	analyzed [][]*domain.Trip
}

func (s *stubCompliance) Analyze(_ context.Context, trips []*domain.Trip, _ *domain.UserProfile, onRetry func()) *domain.ComplianceStatus {
	s.analyzed = append(s.analyzed, trips)
	if s.retries && onRetry != nil {
		onRetry()
	}
	if s.status != nil {
		return s.status
	}
	return &domain.ComplianceStatus{
		SchengenDaysUsed:      0,
		SchengenDaysRemaining: domain.SchengenLimitDays,
		RiskLevel:             domain.RiskSafe,
		Recommendation:        "All clear.",
		Source:                "thinking",
	}
}

type stubInsights struct {
	text  string
	calls int
}

func (s *stubInsights) DestinationInsights(context.Context, string, *domain.UserProfile) string {
	s.calls++
	return s.text
}

type stubParser struct {
	draft *domain.TripDraft
}

func (s *stubParser) ParseTravelText(context.Context, string) *domain.TripDraft {
	if s.draft == nil {
		return &domain.TripDraft{}
	}
	return s.draft
}

type stubChat struct {
	reply *intelligence.ChatReply
	sent  []string
}

func (s *stubChat) Send(_ context.Context, message string, _ []domain.ChatMessage, _ []*domain.Trip, _ *domain.UserProfile) *intelligence.ChatReply {
	s.sent = append(s.sent, message)
	if s.reply != nil {
		return s.reply
	}
	return &intelligence.ChatReply{Text: "stub reply"}
}

// newTestApp wires an App over an in-memory database and stub
// intelligence services.
func newTestApp(t *testing.T) (*App, *stubCompliance) {
	conn := testutil.NewTestDB(t)
	compliance := &stubCompliance{}

	app := &App{
		Trips:      service.NewTripService(repository.NewSQLiteTripRepo(conn)),
		Profile:    service.NewProfileService(repository.NewSQLiteUserProfileRepo(conn)),
		Simulation: service.NewSimulationOverlay(),
		Compliance: compliance,
		Insights:   &stubInsights{text: "## Brief"},
		Parser:     &stubParser{},
		Chat:       &stubChat{},

		IsInteractive: func() bool { return false },
	}
	return app, compliance
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// execute runs the root command with args.
func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.Execute()
}
