package intelligence

import (
	"context"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
)

// insightUnavailable is returned on any fetch failure. It is never
// cached, so a later lookup can succeed once the transient condition
// clears.
const insightUnavailable = "Unable to fetch insights."

// InsightService fetches concise destination briefs, memoized per
// (country, nationality) pair for the lifetime of the process.
type InsightService interface {
	DestinationInsights(ctx context.Context, country string, profile *domain.UserProfile) string
}

type insightService struct {
	client llm.Client
	cache  *InsightCache
}

// NewInsightService creates an InsightService backed by the fast model
// tier and the given cache.
func NewInsightService(client llm.Client, cache *InsightCache) InsightService {
	return &insightService{client: client, cache: cache}
}

func (s *insightService) DestinationInsights(ctx context.Context, country string, profile *domain.UserProfile) string {
	key := insightKey(country, profile.Nationality)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Tier:       llm.TierFast,
		UserPrompt: buildInsightPrompt(country, profile),
	})
	if err != nil {
		return insightUnavailable
	}

	s.cache.Put(key, resp.Text)
	return resp.Text
}
