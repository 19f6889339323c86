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

const validComplianceJSON = `{
  "schengenDaysUsed": 10,
  "schengenDaysRemaining": 80,
  "riskLevel": "SAFE",
  "taxResidencyRisk": [],
  "recommendation": "You are well within limits."
}`

func TestAnalyzePrimaryTierSuccess(t *testing.T) {
	client := &mockLLMClient{response: validComplianceJSON}
	svc := NewComplianceService(client)

	trips := []*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")}
	status := svc.Analyze(context.Background(), trips, testutil.NewTestProfile(), nil)

	require.NotNil(t, status)
	assert.Equal(t, 10, status.SchengenDaysUsed)
	assert.Equal(t, 80, status.SchengenDaysRemaining)
	assert.Equal(t, domain.RiskSafe, status.RiskLevel)
	assert.Equal(t, "You are well within limits.", status.Recommendation)
	assert.Empty(t, status.TaxResidencyRisk)
	assert.Equal(t, "thinking", status.Source)

	// Exactly one call, against the thinking tier, schema-constrained.
	require.Equal(t, []llm.Tier{llm.TierThinking}, client.tiersCalled())
	assert.NotNil(t, client.calls[0].ResponseSchema)
}

func TestAnalyzeFallsBackToStandardTier(t *testing.T) {
	client := &mockLLMClient{
		tierErrs:  map[llm.Tier]error{llm.TierThinking: llm.ErrQuota},
		tierTexts: map[llm.Tier]string{llm.TierStandard: validComplianceJSON},
	}
	svc := NewComplianceService(client)

	retries := 0
	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")},
		testutil.NewTestProfile(),
		func() { retries++ })

	assert.Equal(t, 1, retries, "retry signal must fire exactly once")
	assert.Equal(t, []llm.Tier{llm.TierThinking, llm.TierStandard}, client.tiersCalled())
	assert.Equal(t, 10, status.SchengenDaysUsed)
	assert.Equal(t, "standard", status.Source)
}

func TestAnalyzeBothTiersFailUsesLocalApproximation(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	svc := NewComplianceService(client)

	retries := 0
	trips := []*domain.Trip{
		testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10"),  // 10 Schengen days
		testutil.NewTestTrip("Japan", "2024-02-01", "2024-02-20"),  // not Schengen
	}
	status := svc.Analyze(context.Background(), trips, testutil.NewTestProfile(), func() { retries++ })

	assert.Equal(t, 1, retries)
	assert.Equal(t, []llm.Tier{llm.TierThinking, llm.TierStandard}, client.tiersCalled())

	assert.Equal(t, 10, status.SchengenDaysUsed)
	assert.Equal(t, 80, status.SchengenDaysRemaining)
	assert.Equal(t, domain.RiskSafe, status.RiskLevel)
	assert.Equal(t, fallbackRecommendation, status.Recommendation)
	assert.Empty(t, status.TaxResidencyRisk)
	assert.Equal(t, "local", status.Source)
}

func TestAnalyzeFallbackNeverReportsDanger(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	svc := NewComplianceService(client)

	// 100 inclusive Schengen days: well over the limit, but the
	// fallback caps out at WARNING.
	trips := []*domain.Trip{testutil.NewTestTrip("France", "2024-01-01", "2024-04-09")}
	status := svc.Analyze(context.Background(), trips, testutil.NewTestProfile(), nil)

	assert.Equal(t, domain.RiskWarning, status.RiskLevel)
	assert.Equal(t, 0, status.SchengenDaysRemaining)
	assert.NotEmpty(t, status.Recommendation)
}

func TestAnalyzeZeroTrips(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	svc := NewComplianceService(client)

	status := svc.Analyze(context.Background(), nil, testutil.NewTestProfile(), nil)

	assert.Equal(t, 0, status.SchengenDaysUsed)
	assert.Equal(t, domain.SchengenLimitDays, status.SchengenDaysRemaining)
	assert.Equal(t, domain.RiskSafe, status.RiskLevel)
}

func TestAnalyzeMalformedPrimaryCascades(t *testing.T) {
	client := &mockLLMClient{
		tierTexts: map[llm.Tier]string{
			llm.TierThinking: `not json at all`,
			llm.TierStandard: validComplianceJSON,
		},
	}
	svc := NewComplianceService(client)

	retries := 0
	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")},
		testutil.NewTestProfile(),
		func() { retries++ })

	assert.Equal(t, 1, retries)
	assert.Equal(t, "standard", status.Source)
	assert.Equal(t, 10, status.SchengenDaysUsed)
}

func TestAnalyzeRejectsInvalidRiskLevel(t *testing.T) {
	client := &mockLLMClient{
		tierTexts: map[llm.Tier]string{
			llm.TierThinking: `{"schengenDaysUsed":5,"schengenDaysRemaining":85,"riskLevel":"CATASTROPHIC","recommendation":"run"}`,
			llm.TierStandard: validComplianceJSON,
		},
	}
	svc := NewComplianceService(client)

	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10")},
		testutil.NewTestProfile(), nil)

	// Schema-invalid payloads are tier failures, not crashes.
	assert.Equal(t, "standard", status.Source)
}

func TestAnalyzeParsesTaxResidencyRisks(t *testing.T) {
	client := &mockLLMClient{response: `{
	  "schengenDaysUsed": 70,
	  "schengenDaysRemaining": 20,
	  "riskLevel": "WARNING",
	  "taxResidencyRisk": [
	    {"country": "Spain", "daysSpent": 170, "threshold": 183, "risk": "WARNING"}
	  ],
	  "recommendation": "Leave Spain before day 183.",
	  "resetDate": "2024-06-01"
	}`}
	svc := NewComplianceService(client)

	status := svc.Analyze(context.Background(),
		[]*domain.Trip{testutil.NewTestTrip("Spain", "2024-01-01", "2024-06-18")},
		testutil.NewTestProfile(), nil)

	assert.Equal(t, domain.RiskWarning, status.RiskLevel)
	require.Len(t, status.TaxResidencyRisk, 1)
	assert.Equal(t, "Spain", status.TaxResidencyRisk[0].Country)
	assert.Equal(t, 170, status.TaxResidencyRisk[0].DaysSpent)
	assert.Equal(t, 183, status.TaxResidencyRisk[0].Threshold)
	assert.Equal(t, "2024-06-01", status.ResetDate)
}

func TestApproximateStats(t *testing.T) {
	trips := []*domain.Trip{
		testutil.NewTestTrip("Spain", "2024-01-01", "2024-01-10"),
		testutil.NewTestTrip("France", "2024-02-01", "2024-02-05"),
		testutil.NewTestTrip("Japan", "2024-03-01", "2024-03-10"),
	}
	stats := approximateStats(trips)

	assert.Equal(t, 15, stats.SchengenDays) // 10 + 5
	assert.Equal(t, 10, stats.CountryDays["Spain"])
	assert.Equal(t, 5, stats.CountryDays["France"])
	assert.Equal(t, 10, stats.CountryDays["Japan"])
}

func TestApproximateStatsEmpty(t *testing.T) {
	stats := approximateStats(nil)
	assert.Zero(t, stats.SchengenDays)
	assert.Empty(t, stats.CountryDays)
}
