package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/intelligence"
)

// chatReplyMsg carries an assistant turn back into the view.
type chatReplyMsg struct {
	reply *intelligence.ChatReply
}

// chatView is the multi-turn compliance assistant. Every turn carries
// the full trip and profile context; the view keeps only the visible
// transcript and the history sent back to the model.
type chatView struct {
	state *SharedState
	input textinput.Model

	history  []domain.ChatMessage
	rendered []string
	waiting  bool
}

func newChatView(state *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	v := &chatView{
		state: state,
		input: ti,
	}
	v.rendered = append(v.rendered,
		formatter.Dim("Ask about visas, Schengen limits or tax residency. Esc to go back."))

	return v
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}

		if msg.Type == tea.KeyEnter && !v.waiting {
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if text == "" {
				return v, nil
			}
			return v, v.send(text)
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case chatReplyMsg:
		v.waiting = false
		v.history = append(v.history, domain.ChatMessage{Role: domain.RoleModel, Text: msg.reply.Text})

		width := max(v.state.Width-4, 40)
		answer := formatter.RenderMarkdown(msg.reply.Text, width)
		if sources := formatter.FormatSources(msg.reply.Sources); sources != "" {
			answer += sources
		}
		v.rendered = append(v.rendered, answer)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) send(text string) tea.Cmd {
	v.rendered = append(v.rendered, formatter.Dim("You: ")+text)

	// History sent to the model excludes the turn being asked.
	history := make([]domain.ChatMessage, len(v.history))
	copy(history, v.history)
	v.history = append(v.history, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	v.waiting = true

	app := v.state.App
	profile := v.state.Profile

	return func() tea.Msg {
		trips, err := app.Trips.List(context.Background())
		if err != nil {
			trips = nil
		}
		merged := app.Simulation.Merged(trips)
		reply := app.Chat.Send(context.Background(), text, history, merged, profile)
		return chatReplyMsg{reply: reply}
	}
}

func (v *chatView) View() string {
	var b strings.Builder

	for _, msg := range v.rendered {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if v.waiting {
		b.WriteString(formatter.Dim("Thinking..."))
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("chat") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(v.input.View())

	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Chat" }
func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
