package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/resisync/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Profile loaded at startup. Nil until onboarding completes.
	Profile *domain.UserProfile

	// Terminal dimensions
	Width  int
	Height int

	// Send delivers a message into the running program from outside
	// the update loop (timer goroutines, analysis callbacks). Set by
	// runTUI once the program exists.
	Send func(tea.Msg)
}

// post sends a message into the program if the sender is wired.
func (s *SharedState) post(msg tea.Msg) {
	if s.Send != nil {
		s.Send(msg)
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
