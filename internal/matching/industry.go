package matching

import "strings"

// Industry scores. An empty preference set defaults to a mild positive.
const (
	industryNoPreferenceScore = 0.7
	industryExactScore        = 1.0
	industryRelatedScore      = 0.8
	industryMismatchScore     = 0.4
)

// relatedIndustries maps keyed industry terms to related ones. Matching is
// bidirectional and substring-based, like the skill graph.
var relatedIndustries = map[string][]string{
	"oil":                {"energy", "petroleum", "gas", "upstream", "downstream"},
	"tech":               {"software", "it", "computer", "digital", "startup"},
	"manufacturing":      {"production", "industrial", "factory", "engineering"},
	"finance":            {"banking", "fintech", "financial", "investment"},
	"telecommunications": {"telecom", "mobile", "network", "communication"},
}

// IndustryScore rates fit between the student's preferred industries and the
// placement's department. The result is in [0,1].
func IndustryScore(preferredIndustries []string, department string) float64 {
	if len(preferredIndustries) == 0 {
		return industryNoPreferenceScore
	}

	target := normalize(department)

	for _, preferred := range preferredIndustries {
		if normalize(preferred) == target {
			return industryExactScore
		}
	}

	for _, preferred := range preferredIndustries {
		if areRelatedIndustries(normalize(preferred), target) {
			return industryRelatedScore
		}
	}

	return industryMismatchScore
}

func areRelatedIndustries(a, b string) bool {
	for key, related := range relatedIndustries {
		if strings.Contains(a, key) && containsAny(b, related) {
			return true
		}
		if strings.Contains(b, key) && containsAny(a, related) {
			return true
		}
	}
	return false
}
