package intelligence

import (
	"github.com/alexanderramin/resisync/internal/domain"
)

// localStats is the client-side day-count approximation. It is computed
// on every analysis cycle regardless of remote outcome: it feeds the
// prompt as context and serves as the guaranteed final fallback.
type localStats struct {
	SchengenDays int
	CountryDays  map[string]int
}

// approximateStats sums inclusive day counts per trip. This is a rough
// approximation only; the exact rolling-window computation is delegated
// to the remote model.
func approximateStats(trips []*domain.Trip) localStats {
	stats := localStats{CountryDays: make(map[string]int)}
	for _, t := range trips {
		days := t.InclusiveDays()
		if t.IsSchengen {
			stats.SchengenDays += days
		}
		stats.CountryDays[t.Country] += days
	}
	return stats
}

// fallbackRecommendation is shown when both model tiers fail.
const fallbackRecommendation = "AI Analysis unavailable due to high traffic. Please verify dates manually."

// fallbackWarningThreshold is the approximate Schengen day count above
// which the static fallback reports WARNING instead of SAFE. The
// fallback never reports DANGER: without the exact rolling-window
// computation there is not enough evidence for it.
const fallbackWarningThreshold = 80

// fallbackStatus builds the deterministic status from the local
// approximation.
func fallbackStatus(stats localStats) *domain.ComplianceStatus {
	remaining := domain.SchengenLimitDays - stats.SchengenDays
	if remaining < 0 {
		remaining = 0
	}
	risk := domain.RiskSafe
	if stats.SchengenDays > fallbackWarningThreshold {
		risk = domain.RiskWarning
	}
	return &domain.ComplianceStatus{
		SchengenDaysUsed:      stats.SchengenDays,
		SchengenDaysRemaining: remaining,
		RiskLevel:             risk,
		TaxResidencyRisk:      []domain.TaxResidencyRisk{},
		Recommendation:        fallbackRecommendation,
		Source:                "local",
	}
}
