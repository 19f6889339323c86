package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
	"github.com/alexanderramin/resisync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendForwardsHistoryAndContext(t *testing.T) {
	client := &mockLLMClient{response: "You have **80 days** remaining."}
	svc := NewChatService(client)

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Text: "How many Schengen days do I have left?"},
		{Role: domain.RoleModel, Text: "Let me check your trips."},
	}
	trips := []*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")}

	reply := svc.Send(context.Background(), "And after my Spain trip?", history, trips, testutil.NewTestProfile())

	require.NotNil(t, reply)
	assert.Equal(t, "You have **80 days** remaining.", reply.Text)

	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, llm.TierStandard, req.Tier)
	assert.Equal(t, "And after my Spain trip?", req.UserPrompt)
	assert.True(t, req.EnableSearch)
	assert.True(t, req.EnableMaps)
	assert.Contains(t, req.SystemPrompt, "Spain")
	require.Len(t, req.History, 2)
	assert.Equal(t, "user", req.History[0].Role)
	assert.Equal(t, "model", req.History[1].Role)
}

func TestChatSendMapsGroundingSources(t *testing.T) {
	client := &mockLLMClient{
		response: "Per the official site, 90 days visa-free.",
		sources: []llm.Source{
			{Title: "Schengen Visa Info", URI: "https://example.com/schengen"},
			{Title: "", URI: "https://example.com/anon"},
		},
	}
	svc := NewChatService(client)

	reply := svc.Send(context.Background(), "Do I need a visa for France?", nil, nil, testutil.NewTestProfile())

	require.Len(t, reply.Sources, 2)
	assert.Equal(t, domain.ChatSource{Title: "Schengen Visa Info", URI: "https://example.com/schengen"}, reply.Sources[0])
	assert.Equal(t, "https://example.com/anon", reply.Sources[1].URI)
}

func TestChatSendFailureReturnsFixedReply(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrQuota}
	svc := NewChatService(client)

	reply := svc.Send(context.Background(), "hello", nil, nil, testutil.NewTestProfile())

	require.NotNil(t, reply)
	assert.Equal(t, chatUnavailable, reply.Text)
	assert.Empty(t, reply.Sources)
}
