package domain

import "strings"

// SchengenCountries is the fixed list used for auto-suggesting the
// Schengen flag on new trips. The flag stays user-overridable; this
// list only seeds the default.
var SchengenCountries = []string{
	"Austria", "Belgium", "Bulgaria", "Croatia", "Czech Republic", "Denmark",
	"Estonia", "Finland", "France", "Germany", "Greece", "Hungary", "Iceland",
	"Italy", "Latvia", "Liechtenstein", "Lithuania", "Luxembourg", "Malta",
	"Netherlands", "Norway", "Poland", "Portugal", "Romania", "Slovakia",
	"Slovenia", "Spain", "Sweden", "Switzerland",
}

// SuggestSchengen reports whether the country input looks like a
// Schengen-area country. Matching is a case-insensitive substring test
// so that inputs like "southern Spain" still trigger the suggestion.
func SuggestSchengen(country string) bool {
	in := strings.ToLower(country)
	for _, sc := range SchengenCountries {
		if strings.Contains(in, strings.ToLower(sc)) {
			return true
		}
	}
	return false
}
