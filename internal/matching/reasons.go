package matching

import (
	"fmt"
	"strings"

	"github.com/placemate/placemate/internal/placement"
)

const maxReasons = 4

// fallbackReason is used when no rule fires, so the reason list is never empty.
const fallbackReason = "This placement offers valuable experience in your field"

// Reasons turns a score breakdown into human-readable match reasons. Rules
// are evaluated in priority order and the list is capped at the first four
// produced.
func Reasons(student *placement.Student, p *placement.Placement, score MatchScore) []string {
	reasons := make([]string, 0, maxReasons)

	if skills := score.Breakdown[ComponentSkills]; skills >= 80 {
		reasons = append(reasons, fmt.Sprintf("Strong skills match (%d%%)", skills))
	} else if skills >= 60 {
		reasons = append(reasons, fmt.Sprintf("Good skills alignment (%d%%)", skills))
	}

	if location := score.Breakdown[ComponentLocation]; location >= 90 {
		reasons = append(reasons, "Perfect location match")
	} else if location >= 70 {
		reasons = append(reasons, "Good location fit")
	}

	if score.Breakdown[ComponentIndustry] >= 80 {
		reasons = append(reasons, "Excellent industry alignment")
	}

	if score.Breakdown[ComponentLevel] >= 80 {
		reasons = append(reasons, "Well suited to your academic level")
	}

	if semantic, ok := score.Breakdown[ComponentSemantic]; ok && semantic >= 70 {
		reasons = append(reasons, "Strong AI-assessed compatibility")
	}

	if newSkills := learningOpportunities(student, p); len(newSkills) > 0 {
		reason := fmt.Sprintf("Learn %s", strings.Join(newSkills[:min(2, len(newSkills))], ", "))
		if len(newSkills) > 2 {
			reason += " and more"
		}
		reasons = append(reasons, reason)
	}

	if len(reasons) == 0 {
		return []string{fallbackReason}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// learningOpportunities lists the placement's skills-to-learn the student
// does not already have.
func learningOpportunities(student *placement.Student, p *placement.Placement) []string {
	var skills []string
	for _, skill := range p.SkillsToLearn {
		if !student.HasSkill(skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}
