package matching

import "strings"

// emptyRequirementsScore is returned when a placement states no required
// skills. The absence of requirements is a mild positive, not a penalty.
const emptyRequirementsScore = 0.8

// relatedSkills maps canonical skill names to near-synonym families. Matching
// against it is bidirectional, case-insensitive and substring-based. Built
// once at process start and never mutated.
var relatedSkills = map[string][]string{
	"javascript": {"js", "node", "react", "vue", "angular"},
	"python":     {"django", "flask", "fastapi", "pandas", "numpy"},
	"java":       {"spring", "hibernate", "maven", "gradle"},
	"react":      {"javascript", "jsx", "redux", "next"},
	"vue":        {"javascript", "vuex", "nuxt"},
	"angular":    {"javascript", "typescript", "rxjs"},
	"database":   {"sql", "mysql", "postgresql", "mongodb"},
	"aws":        {"cloud", "ec2", "s3", "lambda"},
	"docker":     {"kubernetes", "containerization", "devops"},
}

// SkillsScore rates the overlap between the student's skills and the
// placement's required skills. An exact match counts as a full match, a
// partial match (substring containment either way, or membership in the
// related-skill graph) counts as half. The result is in [0,1].
func SkillsScore(studentSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return emptyRequirementsScore
	}

	normalized := normalizeAll(studentSkills)

	var full, partial int
	for _, required := range normalizeAll(requiredSkills) {
		if containsExact(normalized, required) {
			full++
			continue
		}

		for _, skill := range normalized {
			if strings.Contains(skill, required) || strings.Contains(required, skill) || areRelatedSkills(skill, required) {
				partial++
				break
			}
		}
	}

	score := (float64(full) + 0.5*float64(partial)) / float64(len(requiredSkills))
	if score > 1 {
		score = 1
	}
	return score
}

func areRelatedSkills(a, b string) bool {
	for key, related := range relatedSkills {
		if strings.Contains(a, key) && containsAny(b, related) {
			return true
		}
		if strings.Contains(b, key) && containsAny(a, related) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func normalizeAll(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		normalized = append(normalized, normalize(v))
	}
	return normalized
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
