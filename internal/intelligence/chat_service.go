package intelligence

import (
	"context"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
)

// chatUnavailable is the fixed reply when the chat call fails.
const chatUnavailable = "I'm having trouble connecting to the compliance database. Please try again."

// ChatReply is the assistant's answer with optional grounding citations.
type ChatReply struct {
	Text    string
	Sources []domain.ChatSource
}

// ChatService answers free-form questions grounded in the user's trips
// and profile, with live search/maps lookups for anything legally
// time-sensitive. It keeps no server-side session: every call rebuilds
// the full context.
type ChatService interface {
	Send(ctx context.Context, message string, history []domain.ChatMessage, trips []*domain.Trip, profile *domain.UserProfile) *ChatReply
}

type chatService struct {
	client llm.Client
	now    func() time.Time
}

// NewChatService creates a ChatService backed by the standard,
// tool-capable model tier.
func NewChatService(client llm.Client) ChatService {
	return &chatService{client: client, now: time.Now}
}

func (s *chatService) Send(ctx context.Context, message string, history []domain.ChatMessage, trips []*domain.Trip, profile *domain.UserProfile) *ChatReply {
	turns := make([]llm.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, llm.ChatTurn{Role: string(msg.Role), Text: msg.Text})
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Tier:         llm.TierStandard,
		SystemPrompt: buildChatSystemPrompt(trips, profile, s.now()),
		UserPrompt:   message,
		History:      turns,
		EnableSearch: true,
		EnableMaps:   true,
	})
	if err != nil {
		return &ChatReply{Text: chatUnavailable}
	}

	reply := &ChatReply{Text: resp.Text}
	for _, src := range resp.Sources {
		reply.Sources = append(reply.Sources, domain.ChatSource{Title: src.Title, URI: src.URI})
	}
	return reply
}
