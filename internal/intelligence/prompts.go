package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
)

// complianceSystemPrompt frames the analysis model as the compliance engine.
const complianceSystemPrompt = `You are ResiSync, an expert immigration and tax compliance AI.
You analyze travel schedules for digital nomads and output ONLY a JSON object
matching the requested schema. Never output markdown or explanations.`

// buildCompliancePrompt assembles the analysis request: current date,
// serialized trip list, optional profile block, and the rule statement.
func buildCompliancePrompt(trips []*domain.Trip, profile *domain.UserProfile, now time.Time) string {
	var b strings.Builder

	b.WriteString("Analyze the following travel schedule for a digital nomad.\n\n")

	if profile != nil {
		fmt.Fprintf(&b, `User Profile:
- Nationality (Passport): %s
- Current Base: %s
- Strategic Goals: %s

Please tailor the analysis and recommendation to this profile. Specifically
consider visa restrictions for this nationality and tax rules relevant to
their current base or nationality (e.g. US citizenship tax vs territorial tax).

`, profile.Nationality, profile.CurrentLocation, strings.Join(profile.TravelGoals, ", "))
	}

	tripsJSON, err := json.Marshal(domain.PromptViews(trips))
	if err != nil {
		tripsJSON = []byte("[]")
	}

	fmt.Fprintf(&b, "Current Date: %s\nTrips: %s\n\n", now.Format(domain.DateLayout), tripsJSON)

	fmt.Fprintf(&b, `Rules:
1. Schengen Area: Max %d days in any rolling 180-day period.
2. Tax Residency: General warning at %d days in a single country.

Task:
Calculate the exact days used in Schengen.
Identify any tax residency risks (approaching %d days).
Determine the Risk Level (SAFE, WARNING, DANGER).
Provide a concise, strategic recommendation to avoid overstay or tax issues.
If there is a violation, suggest a "Reset" strategy (e.g. go to non-Schengen country X).`,
		domain.SchengenLimitDays, domain.TaxResidencyThresholdDays, domain.TaxResidencyThresholdDays)

	return b.String()
}

// buildInsightPrompt requests the fixed four-section destination brief.
func buildInsightPrompt(country string, profile *domain.UserProfile) string {
	return fmt.Sprintf(`Provide a very concise executive brief for a digital nomad traveling to %s.

User Context:
- Nationality: %s
- Goals: %s

Include:
1. Visa Status (Do they need one?)
2. Tax Warning (Briefly)
3. Nomad Hotspots & Local Vibe
4. One "Pro Tip" for logistics (SIM card, sockets, or transport).

Format as a short, punchy markdown list. No intro/outro.`,
		country, profile.Nationality, strings.Join(profile.TravelGoals, ", "))
}

// buildParsePrompt requests trip extraction from free text.
func buildParsePrompt(text string) string {
	return fmt.Sprintf(`Extract travel details from this text (email, booking, etc).
Return a JSON object with:
- country (string)
- countryCode (2-letter ISO code, e.g. "ES", "FR", "JP")
- startDate (YYYY-MM-DD)
- endDate (YYYY-MM-DD)
- isSchengen (boolean)

If a date is missing, make a best guess based on context or leave it empty.

Text: %q`, text)
}

// buildChatSystemPrompt reconstructs the grounded chat context from the
// full trip list and profile. There is no server-side session; every
// call carries the whole context.
func buildChatSystemPrompt(trips []*domain.Trip, profile *domain.UserProfile, now time.Time) string {
	tripsJSON, err := json.Marshal(domain.PromptViews(trips))
	if err != nil {
		tripsJSON = []byte("[]")
	}

	profileBlock := ""
	if profile != nil {
		profileBlock = fmt.Sprintf(`
User Profile:
- Nationality: %s
- Location: %s
- Goals: %s
`, profile.Nationality, profile.CurrentLocation, strings.Join(profile.TravelGoals, ", "))
	}

	return fmt.Sprintf(`You are ResiSync, a highly knowledgeable AI legal companion for digital nomads.
You help users navigate complex visa rules (Schengen 90/180, US SPT, UK SRT) and tax residency laws.

Current User Context:
- Date: %s
- Trips Planned: %s
%s
Guidelines:
- ALWAYS cross-reference the user's "Trips Planned" AND "User Profile" (Nationality is critical for visa rules).
- Use Google Search to find the latest visa requirements, income thresholds, and tax treaty details. THIS IS CRITICAL.
- If explaining a legal rule, YOU MUST VERIFY it with Search to ensure it is current.
- Use Google Maps if the user asks for locations (embassies, offices).
- Be concise, professional, but empathetic.
- Format response in clean Markdown (use **bold** for key terms, bullet points for steps).
- Warn about risks (e.g., "You are close to 183 days in Spain").
- Do not give binding legal advice; always suggest consulting a professional.`,
		now.Format(domain.DateLayout), tripsJSON, profileBlock)
}
