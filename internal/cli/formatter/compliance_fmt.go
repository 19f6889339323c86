package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/resisync/internal/domain"
)

// FormatComplianceStatus renders the full analysis card: meter, risk
// pill, tax exposure table and the model's recommendation.
func FormatComplianceStatus(status *domain.ComplianceStatus) string {
	var b strings.Builder

	b.WriteString(SchengenMeter(status.SchengenDaysUsed, 30))
	b.WriteString("\n\n")
	b.WriteString(RiskPill(status.RiskLevel))
	if status.Source == "local" {
		b.WriteString("  " + Dim("(offline estimate)"))
	}
	b.WriteString("\n")

	if len(status.TaxResidencyRisk) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Tax Residency"))
		b.WriteString("\n")
		b.WriteString(FormatTaxRisks(status.TaxResidencyRisk))
	}

	if status.Recommendation != "" {
		b.WriteString("\n")
		b.WriteString(Header("Recommendation"))
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(status.Recommendation))
		b.WriteString("\n")
	}

	if status.ResetDate != "" {
		b.WriteString(Dim(fmt.Sprintf("Allowance improves around %s", status.ResetDate)))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTaxRisks renders per-country residency exposure rows.
func FormatTaxRisks(risks []domain.TaxResidencyRisk) string {
	headers := []string{"COUNTRY", "DAYS", "THRESHOLD", "RISK"}
	rows := make([][]string, 0, len(risks))
	for _, r := range risks {
		rows = append(rows, []string{
			r.Country,
			strconv.Itoa(r.DaysSpent),
			strconv.Itoa(r.Threshold),
			RiskPill(r.Risk),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSources renders grounding citations as a dimmed footnote list.
func FormatSources(sources []domain.ChatSource) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Dim("Sources:"))
	b.WriteString("\n")
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URI
		}
		b.WriteString(Dim(fmt.Sprintf("  [%d] %s — %s", i+1, title, s.URI)))
		b.WriteString("\n")
	}
	return b.String()
}
