package placement

import (
	"strings"

	"github.com/google/uuid"
)

// Student is a student profile as read by the matching engine. Profiles are
// owned by the profile-update flow; the engine treats them as read-only input.
type Student struct {
	ID                  uuid.UUID `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	University          string    `json:"university"`
	Department          string    `json:"department"`
	Level               int       `json:"level"`
	Location            string    `json:"location"`
	Bio                 string    `json:"bio,omitempty"`
	Skills              []string  `json:"skills,omitempty"`
	DesiredSkills       []string  `json:"desired_skills,omitempty"`
	PreferredLocations  []string  `json:"preferred_locations,omitempty"`
	PreferredIndustries []string  `json:"preferred_industries,omitempty"`
}

func (s *Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// HasSkill reports whether any of the student's skills contains the given
// term, case-insensitively. Used for the learning-opportunity reasons.
func (s *Student) HasSkill(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	for _, skill := range s.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
