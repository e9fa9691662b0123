package filtering

import (
	"context"
	"fmt"

	"github.com/placemate/placemate/internal/placement"
)

type appliedHistoryFilter struct {
	applications *placement.Applications
}

// NewAppliedHistory creates a filter that removes placements present in the
// student's application history, so an applied-to placement is never scored
// or re-offered.
func NewAppliedHistory(applications *placement.Applications) Filter {
	return &appliedHistoryFilter{applications: applications}
}

func (f *appliedHistoryFilter) Name() string { return "applied_history" }

func (f *appliedHistoryFilter) Apply(_ context.Context, p *placement.Placements) (*placement.Placements, Step, error) {
	if f.applications == nil {
		return p, Step{}, fmt.Errorf("applications are required")
	}

	initial := p.Len()
	excluded := p.Exclude(f.applications.PlacementIDs())

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}
