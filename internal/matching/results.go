package matching

import (
	"encoding/json"
	"os"

	"github.com/placemate/placemate/internal/placement"
)

// MatchResult pairs a placement with its score and reasons. Computed per
// request and never stored.
type MatchResult struct {
	Placement *placement.Placement `json:"placement"`
	Score     MatchScore           `json:"score"`
	Reasons   []string             `json:"reasons"`
}

type Results []*MatchResult

func (r Results) Len() int { return len(r) }

// Placements returns the underlying placements in result order.
func (r Results) Placements() *placement.Placements {
	placements := &placement.Placements{Items: make([]*placement.Placement, 0, len(r))}
	for _, result := range r {
		placements.Items = append(placements.Items, result.Placement)
	}
	return placements
}

func (r Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
