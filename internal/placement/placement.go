package placement

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Placement is a company-posted internship/industrial-training opportunity.
// The engine treats it as immutable input for a single scoring pass.
type Placement struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Description    string    `json:"description,omitempty"`
	Requirements   string    `json:"requirements,omitempty"`
	RequiredSkills []string  `json:"required_skills,omitempty"`
	SkillsToLearn  []string  `json:"skills_to_learn,omitempty"`
	Location       string    `json:"location"`
	Remote         bool      `json:"remote"`
	DurationWeeks  int       `json:"duration_weeks,omitempty"`
	Active         bool      `json:"active"`
	Deadline       time.Time `json:"deadline,omitzero"`
	CreatedAt      time.Time `json:"created_at,omitzero"`

	Company *Company `json:"company,omitempty"`
}

type Placements struct {
	Items []*Placement
}

func (p *Placements) Len() int {
	return len(p.Items)
}

func (p *Placements) FindByID(id uuid.UUID) *Placement {
	for _, item := range p.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Exclude removes the placements with the given ids and returns the ids that
// were actually removed. Order of the remaining items is preserved since the
// ranking tie-break depends on it.
func (p *Placements) Exclude(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	var excluded []uuid.UUID
	kept := p.Items[:0]
	for _, item := range p.Items {
		if _, ok := drop[item.ID]; ok {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	p.Items = kept

	return excluded
}

// ExcludePastDeadline removes placements whose application deadline is before
// the given moment and returns the removed ids. Placements without a deadline
// are kept.
func (p *Placements) ExcludePastDeadline(now time.Time) []uuid.UUID {
	var excluded []uuid.UUID
	kept := p.Items[:0]
	for _, item := range p.Items {
		if !item.Deadline.IsZero() && item.Deadline.Before(now) {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	p.Items = kept

	return excluded
}

func (p *Placements) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "placements_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups placements by their company for CLI reporting.
func (p *Placements) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range p.Items {
		name, verified := "unknown", "false"
		if item.Company != nil {
			name = item.Company.Name
			verified = strconv.FormatBool(item.Company.Verified)
		}
		key := fmt.Sprintf("%s (%s)", name, item.CompanyID)
		report[key] = append(report[key], map[string]string{
			"title":      item.Title,
			"department": item.Department,
			"location":   item.Location,
			"duration":   fmt.Sprintf("%d weeks", item.DurationWeeks),
			"verified":   verified,
		})
	}
	return report
}
