package domain

// SchengenLimitDays is the maximum stay allowed in the Schengen area
// within any rolling 180-day window.
const SchengenLimitDays = 90

// TaxResidencyThresholdDays is the generic single-country day count at
// which tax-residency exposure is flagged.
const TaxResidencyThresholdDays = 183

// TaxResidencyRisk flags one country approaching its residency threshold.
type TaxResidencyRisk struct {
	Country   string    `json:"country"`
	DaysSpent int       `json:"daysSpent"`
	Threshold int       `json:"threshold"`
	Risk      RiskLevel `json:"risk"`
}

// ComplianceStatus is the output of a single analysis cycle. It is
// derived state: recomputed on every cycle, held only in UI state and
// never persisted.
type ComplianceStatus struct {
	SchengenDaysUsed      int                `json:"schengenDaysUsed"`
	SchengenDaysRemaining int                `json:"schengenDaysRemaining"`
	RiskLevel             RiskLevel          `json:"riskLevel"`
	TaxResidencyRisk      []TaxResidencyRisk `json:"taxResidencyRisk"`
	Recommendation        string             `json:"recommendation"`
	ResetDate             string             `json:"resetDate,omitempty"`

	// Source records which tier produced the status: "thinking",
	// "standard" or "local".
	Source string `json:"-"`
}
