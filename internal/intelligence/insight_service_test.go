package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/resisync/internal/llm"
	"github.com/alexanderramin/resisync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationInsightsCachesPerCountryNationality(t *testing.T) {
	client := &mockLLMClient{response: "## Portugal\nSolid visa options."}
	svc := NewInsightService(client, NewInsightCache())
	profile := testutil.NewTestProfile()

	first := svc.DestinationInsights(context.Background(), "Portugal", profile)
	second := svc.DestinationInsights(context.Background(), "Portugal", profile)

	assert.Equal(t, first, second)
	assert.Len(t, client.calls, 1, "second lookup must be served from cache")
	assert.Equal(t, llm.TierFast, client.calls[0].Tier)
}

func TestDestinationInsightsCacheKeyIsCaseInsensitive(t *testing.T) {
	client := &mockLLMClient{response: "brief"}
	svc := NewInsightService(client, NewInsightCache())
	profile := testutil.NewTestProfile()

	svc.DestinationInsights(context.Background(), "Portugal", profile)
	svc.DestinationInsights(context.Background(), "PORTUGAL", profile)

	assert.Len(t, client.calls, 1)
}

func TestDestinationInsightsFailureNotCached(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	cache := NewInsightCache()
	svc := NewInsightService(client, cache)
	profile := testutil.NewTestProfile()

	got := svc.DestinationInsights(context.Background(), "Japan", profile)
	require.Equal(t, insightUnavailable, got)
	assert.Zero(t, cache.Len())

	// Transient condition clears; retry must hit the network and succeed.
	client.err = nil
	client.response = "## Japan\nVisa-free for 90 days."
	got = svc.DestinationInsights(context.Background(), "Japan", profile)
	assert.Equal(t, "## Japan\nVisa-free for 90 days.", got)
	assert.Equal(t, 1, cache.Len())
}

func TestDestinationInsightsDistinctNationalities(t *testing.T) {
	client := &mockLLMClient{response: "brief"}
	svc := NewInsightService(client, NewInsightCache())

	us := testutil.NewTestProfile()
	de := testutil.NewTestProfile()
	de.Nationality = "German"

	svc.DestinationInsights(context.Background(), "Portugal", us)
	svc.DestinationInsights(context.Background(), "Portugal", de)

	assert.Len(t, client.calls, 2, "different nationalities are separate cache entries")
}

func TestInsightCacheKey(t *testing.T) {
	assert.Equal(t, "portugal-american", insightKey("Portugal", "American"))
	assert.Equal(t, insightKey("SPAIN", "german"), insightKey("spain", "GERMAN"))
}
