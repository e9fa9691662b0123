package matching

import (
	"math"

	"github.com/placemate/placemate/internal/placement"
)

// Breakdown component names. The breakdown communicates raw component quality
// as integer percents, independent of the aggregation weights.
const (
	ComponentSkills   = "skills"
	ComponentLocation = "location"
	ComponentIndustry = "industry"
	ComponentLevel    = "level"
	ComponentSemantic = "semantic"
)

// Aggregation weight profiles. The semantic-augmented profile is used whenever
// the semantic scorer is engaged, the traditional one otherwise.
const (
	weightSkills   = 0.40
	weightLocation = 0.25
	weightIndustry = 0.20
	weightLevel    = 0.15

	semanticWeightSkills   = 0.35
	semanticWeightLocation = 0.20
	semanticWeightIndustry = 0.15
	semanticWeightLevel    = 0.15
	semanticWeightSemantic = 0.15
)

// MatchScore is the compatibility estimate for one (student, placement) pair.
// Overall is in [0,1] rounded to two decimals; Breakdown holds the component
// scores as integer percents in [0,100].
type MatchScore struct {
	Overall   float64        `json:"overall"`
	Breakdown map[string]int `json:"breakdown"`
}

// ComponentScores holds the raw component scores before aggregation. Semantic
// is nil when the semantic scorer is not engaged.
type ComponentScores struct {
	Skills   float64
	Location float64
	Industry float64
	Level    float64
	Semantic *float64
}

// Compose aggregates the components into a MatchScore under the weight
// profile selected by the presence of the semantic component. Every component
// is clamped to [0,1] before aggregation; the internal scorers always stay in
// range, the clamp guards the untrusted semantic path.
func (cs ComponentScores) Compose() MatchScore {
	skills := clamp01(cs.Skills)
	location := clamp01(cs.Location)
	industry := clamp01(cs.Industry)
	level := clamp01(cs.Level)

	breakdown := map[string]int{
		ComponentSkills:   percent(skills),
		ComponentLocation: percent(location),
		ComponentIndustry: percent(industry),
		ComponentLevel:    percent(level),
	}

	var overall float64
	if cs.Semantic != nil {
		semantic := clamp01(*cs.Semantic)
		breakdown[ComponentSemantic] = percent(semantic)
		overall = skills*semanticWeightSkills +
			location*semanticWeightLocation +
			industry*semanticWeightIndustry +
			level*semanticWeightLevel +
			semantic*semanticWeightSemantic
	} else {
		overall = skills*weightSkills +
			location*weightLocation +
			industry*weightIndustry +
			level*weightLevel
	}

	return MatchScore{
		Overall:   math.Round(overall*100) / 100,
		Breakdown: breakdown,
	}
}

// scoreComponents runs the four deterministic scorers for the pair.
func scoreComponents(student *placement.Student, p *placement.Placement) ComponentScores {
	return ComponentScores{
		Skills:   SkillsScore(student.Skills, p.RequiredSkills),
		Location: LocationScore(student.Location, student.PreferredLocations, p.Location),
		Industry: IndustryScore(student.PreferredIndustries, p.Department),
		Level:    LevelScore(student.Level, p.Title),
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
