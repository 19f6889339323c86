package intelligence

import (
	"context"

	"github.com/alexanderramin/resisync/internal/llm"
)

// mockLLMClient is a scriptable llm.Client for service tests.
// Per-tier text/error maps take precedence over the flat fields.
type mockLLMClient struct {
	response string
	sources  []llm.Source
	err      error

	tierTexts map[llm.Tier]string
	tierErrs  map[llm.Tier]error

	calls []llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls = append(m.calls, req)

	if err, ok := m.tierErrs[req.Tier]; ok && err != nil {
		return nil, err
	}
	if text, ok := m.tierTexts[req.Tier]; ok {
		return &llm.GenerateResponse{Text: text, Model: "mock", Sources: m.sources}, nil
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "mock", Sources: m.sources}, nil
}

// tiersCalled returns the sequence of tiers hit, in order.
func (m *mockLLMClient) tiersCalled() []llm.Tier {
	tiers := make([]llm.Tier, 0, len(m.calls))
	for _, c := range m.calls {
		tiers = append(tiers, c.Tier)
	}
	return tiers
}
