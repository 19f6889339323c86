package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/llm"
)

// ComplianceService runs the tiered compliance analysis pipeline.
type ComplianceService interface {
	// Analyze produces a compliance status for the merged trip set.
	// It never fails outward: internal failures cascade through the
	// tier chain and bottom out in a deterministic local
	// approximation. onRetry, if non-nil, is invoked exactly once
	// when the primary tier fails and the secondary is attempted.
	Analyze(ctx context.Context, trips []*domain.Trip, profile *domain.UserProfile, onRetry func()) *domain.ComplianceStatus
}

type complianceService struct {
	client llm.Client
	now    func() time.Time
}

// NewComplianceService creates a ComplianceService backed by an LLM client.
func NewComplianceService(client llm.Client) ComplianceService {
	return &complianceService{client: client, now: time.Now}
}

// complianceLLMResponse is the JSON structure expected from the model.
type complianceLLMResponse struct {
	SchengenDaysUsed      int                       `json:"schengenDaysUsed"`
	SchengenDaysRemaining int                       `json:"schengenDaysRemaining"`
	RiskLevel             string                    `json:"riskLevel"`
	TaxResidencyRisk      []complianceLLMTaxRisk    `json:"taxResidencyRisk"`
	Recommendation        string                    `json:"recommendation"`
	ResetDate             string                    `json:"resetDate"`
}

type complianceLLMTaxRisk struct {
	Country   string `json:"country"`
	DaysSpent int    `json:"daysSpent"`
	Threshold int    `json:"threshold"`
	Risk      string `json:"risk"`
}

// complianceSchema constrains the model output to the status shape.
func complianceSchema() llm.Schema {
	riskEnum := llm.StringEnum("SAFE", "WARNING", "DANGER")
	return llm.Object(map[string]llm.Schema{
		"schengenDaysUsed":      llm.Number(),
		"schengenDaysRemaining": llm.Number(),
		"riskLevel":             riskEnum,
		"taxResidencyRisk": llm.Array(llm.Object(map[string]llm.Schema{
			"country":   llm.String(),
			"daysSpent": llm.Number(),
			"threshold": llm.Number(),
			"risk":      riskEnum,
		})),
		"recommendation": llm.String(),
		"resetDate":      llm.StringDesc("Date when Schengen allowance resets or improves, if applicable"),
	}, "schengenDaysUsed", "schengenDaysRemaining", "riskLevel", "recommendation")
}

func (s *complianceService) Analyze(ctx context.Context, trips []*domain.Trip, profile *domain.UserProfile, onRetry func()) *domain.ComplianceStatus {
	stats := approximateStats(trips)
	prompt := buildCompliancePrompt(trips, profile, s.now())

	// Attempt 1: high-reasoning thinking tier.
	if status, err := s.generate(ctx, llm.TierThinking, prompt); err == nil {
		status.Source = "thinking"
		return status
	}

	if onRetry != nil {
		onRetry()
	}

	// Attempt 2: standard tier, same schema contract, no extended reasoning.
	if status, err := s.generate(ctx, llm.TierStandard, prompt); err == nil {
		status.Source = "standard"
		return status
	}

	// Final fallback: deterministic local approximation.
	return fallbackStatus(stats)
}

// generate runs one tier attempt. A parse or validation failure is a
// tier failure, indistinguishable from a transport error to the caller.
func (s *complianceService) generate(ctx context.Context, tier llm.Tier, prompt string) (*domain.ComplianceStatus, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Tier:           tier,
		SystemPrompt:   complianceSystemPrompt,
		UserPrompt:     prompt,
		ResponseSchema: complianceSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("compliance generation failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[complianceLLMResponse](resp.Text, validateComplianceResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract compliance status: %w", err)
	}

	status := &domain.ComplianceStatus{
		SchengenDaysUsed:      parsed.SchengenDaysUsed,
		SchengenDaysRemaining: parsed.SchengenDaysRemaining,
		RiskLevel:             domain.RiskLevel(parsed.RiskLevel),
		TaxResidencyRisk:      make([]domain.TaxResidencyRisk, 0, len(parsed.TaxResidencyRisk)),
		Recommendation:        parsed.Recommendation,
		ResetDate:             parsed.ResetDate,
	}
	for _, r := range parsed.TaxResidencyRisk {
		status.TaxResidencyRisk = append(status.TaxResidencyRisk, domain.TaxResidencyRisk{
			Country:   r.Country,
			DaysSpent: r.DaysSpent,
			Threshold: r.Threshold,
			Risk:      domain.RiskLevel(r.Risk),
		})
	}
	return status, nil
}

func validateComplianceResponse(resp complianceLLMResponse) error {
	if !domain.ValidRiskLevels[resp.RiskLevel] {
		return fmt.Errorf("unknown risk level %q", resp.RiskLevel)
	}
	if resp.Recommendation == "" {
		return fmt.Errorf("recommendation field is required")
	}
	if resp.SchengenDaysUsed < 0 || resp.SchengenDaysRemaining < 0 {
		return fmt.Errorf("day counts must be non-negative")
	}
	for _, r := range resp.TaxResidencyRisk {
		if !domain.ValidRiskLevels[r.Risk] {
			return fmt.Errorf("unknown tax risk level %q", r.Risk)
		}
	}
	return nil
}
