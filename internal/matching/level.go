package matching

import "strings"

// upperLevelThreshold splits upper-level students (300 level and above) from
// earlier years for the title heuristic.
const upperLevelThreshold = 300

// LevelScore heuristically rates fit between the student's academic level and
// the placement title wording. Purely keyword-based; the result is in [0,1].
func LevelScore(studentLevel int, placementTitle string) float64 {
	title := strings.ToLower(placementTitle)

	if studentLevel >= upperLevelThreshold {
		if strings.Contains(title, "senior") || strings.Contains(title, "lead") {
			return 0.9
		}
		if strings.Contains(title, "intermediate") || strings.Contains(title, "developer") {
			return 1.0
		}
		return 0.8
	}

	if strings.Contains(title, "intern") || strings.Contains(title, "junior") || strings.Contains(title, "trainee") {
		return 1.0
	}

	return 0.6
}
