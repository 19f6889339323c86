package intelligence

import (
	"context"
	"strings"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
)

// ParserService extracts trip details from free text (emails, booking
// confirmations, chat snippets).
type ParserService interface {
	// ParseTravelText returns a draft trip. On any failure the draft
	// is empty; callers must treat a draft without a country as
	// "nothing extracted" and leave any in-progress form untouched.
	ParseTravelText(ctx context.Context, text string) *domain.TripDraft
}

type parserService struct {
	client llm.Client
}

// NewParserService creates a ParserService backed by the fast model tier.
func NewParserService(client llm.Client) ParserService {
	return &parserService{client: client}
}

func parseSchema() llm.Schema {
	return llm.Object(map[string]llm.Schema{
		"country":     llm.String(),
		"countryCode": llm.String(),
		"startDate":   llm.String(),
		"endDate":     llm.String(),
		"isSchengen":  llm.Boolean(),
	})
}

func (s *parserService) ParseTravelText(ctx context.Context, text string) *domain.TripDraft {
	if strings.TrimSpace(text) == "" {
		return &domain.TripDraft{}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Tier:           llm.TierFast,
		UserPrompt:     buildParsePrompt(text),
		ResponseSchema: parseSchema(),
	})
	if err != nil {
		return &domain.TripDraft{}
	}

	draft, err := llm.ExtractJSON[domain.TripDraft](resp.Text, nil)
	if err != nil {
		return &domain.TripDraft{}
	}
	return &draft
}
