package matching

import "strings"

// Location scores, from exact match down to the mismatch floor. The floor is
// never zero so a geographically distant but otherwise excellent placement is
// not fully excluded.
const (
	locationExactScore     = 1.0
	locationPreferredScore = 0.9
	locationRemoteScore    = 0.8
	locationRegionScore    = 0.7
	locationMismatchScore  = 0.3
)

// regions is a fixed two-bucket partition of location names used for coarse
// geographic proximity. Matching is substring-based on normalized input.
var regions = map[string][]string{
	"north": {
		"kano", "kaduna", "katsina", "sokoto", "kebbi", "zamfara", "jigawa",
		"bauchi", "gombe", "plateau", "borno", "yobe", "adamawa", "taraba",
		"benue", "nasarawa", "niger", "kwara", "kogi", "fct",
	},
	"south": {
		"lagos", "ogun", "oyo", "osun", "ondo", "ekiti", "edo", "delta",
		"rivers", "bayelsa", "cross river", "akwa ibom", "abia", "imo",
		"enugu", "anambra", "ebonyi",
	},
}

// LocationScore rates geographic fit between the student and the placement.
// Exact match beats a preferred location, which beats same-region, which
// beats the remote bonus. The result is in [0,1].
func LocationScore(studentLocation string, preferredLocations []string, placementLocation string) float64 {
	student := normalize(studentLocation)
	target := normalize(placementLocation)

	if student == target {
		return locationExactScore
	}

	for _, preferred := range preferredLocations {
		if normalize(preferred) == target {
			return locationPreferredScore
		}
	}

	if sameRegion(student, target) {
		return locationRegionScore
	}

	if strings.Contains(target, "remote") {
		return locationRemoteScore
	}

	return locationMismatchScore
}

func sameRegion(a, b string) bool {
	for _, states := range regions {
		if containsAny(a, states) && containsAny(b, states) {
			return true
		}
	}
	return false
}
