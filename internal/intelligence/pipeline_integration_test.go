package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
	"github.com/alexanderramin/resisync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiStub serves canned generateContent responses keyed by model
// name, so the full client-to-service wire path can be exercised.
type geminiStub struct {
	t *testing.T

	// perModel maps model name to a handler. Missing models get 500.
	perModel map[string]http.HandlerFunc

	hits map[string]int
}

func newGeminiStub(t *testing.T) *geminiStub {
	return &geminiStub{
		t:        t,
		perModel: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}
}

func (s *geminiStub) textResponse(model, text string) {
	s.perModel[model] = func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": text}},
					},
				},
			},
			"modelVersion": model,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (s *geminiStub) errorResponse(model string, status int) {
	s.perModel[model] = func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, fmt.Sprintf("model %s failed", model), status)
	}
}

func (s *geminiStub) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path shape: /models/{model}:generateContent
		path := strings.TrimPrefix(r.URL.Path, "/models/")
		model := strings.TrimSuffix(path, ":generateContent")
		s.hits[model]++

		handler, ok := s.perModel[model]
		if !ok {
			s.t.Errorf("unexpected model requested: %q", model)
			http.Error(w, "unknown model", http.StatusInternalServerError)
			return
		}
		handler(w, r)
	}))
}

func stubClient(srv *httptest.Server) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	return llm.NewGeminiClient(cfg, llm.NoopObserver{})
}

func TestPipelineAnalyzeOverWire(t *testing.T) {
	stub := newGeminiStub(t)
	stub.textResponse("gemini-3-pro-preview", validComplianceJSON)
	srv := stub.server()
	defer srv.Close()

	svc := NewComplianceService(stubClient(srv))
	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")},
		testutil.NewTestProfile(), nil)

	assert.Equal(t, 10, status.SchengenDaysUsed)
	assert.Equal(t, "thinking", status.Source)
	assert.Equal(t, 1, stub.hits["gemini-3-pro-preview"])
	assert.Zero(t, stub.hits["gemini-2.5-flash"])
}

func TestPipelineAnalyzeQuotaFallbackOverWire(t *testing.T) {
	stub := newGeminiStub(t)
	stub.errorResponse("gemini-3-pro-preview", http.StatusTooManyRequests)
	stub.textResponse("gemini-2.5-flash", validComplianceJSON)
	srv := stub.server()
	defer srv.Close()

	svc := NewComplianceService(stubClient(srv))
	retries := 0
	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")},
		testutil.NewTestProfile(), func() { retries++ })

	assert.Equal(t, 1, retries)
	assert.Equal(t, "standard", status.Source)
	assert.Equal(t, 1, stub.hits["gemini-3-pro-preview"])
	assert.Equal(t, 1, stub.hits["gemini-2.5-flash"])
}

func TestPipelineInsightsOverWire(t *testing.T) {
	stub := newGeminiStub(t)
	stub.textResponse("gemini-2.5-flash-lite", "## Portugal\n- Visa-free entry")
	srv := stub.server()
	defer srv.Close()

	svc := NewInsightService(stubClient(srv), NewInsightCache())
	profile := testutil.NewTestProfile()

	got := svc.DestinationInsights(context.Background(), "Portugal", profile)
	require.Equal(t, "## Portugal\n- Visa-free entry", got)

	svc.DestinationInsights(context.Background(), "Portugal", profile)
	assert.Equal(t, 1, stub.hits["gemini-2.5-flash-lite"])
}

func TestPipelineParseOverWire(t *testing.T) {
	stub := newGeminiStub(t)
	stub.textResponse("gemini-2.5-flash-lite",
		`{"country":"Japan","countryCode":"JP","startDate":"2024-03-01","endDate":"2024-03-10","isSchengen":false}`)
	srv := stub.server()
	defer srv.Close()

	svc := NewParserService(stubClient(srv))
	draft := svc.ParseTravelText(context.Background(), "Tokyo trip March 1-10")

	assert.Equal(t, "Japan", draft.Country)
	assert.Equal(t, "JP", draft.CountryCode)
	assert.False(t, draft.IsSchengen)
}
