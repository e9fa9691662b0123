package filtering

import (
	"context"
	"time"

	"github.com/placemate/placemate/internal/placement"
)

type pastDeadlineFilter struct {
	now time.Time
}

// NewPastDeadline creates a filter that removes placements whose application
// deadline has passed. Placements without a deadline are kept.
func NewPastDeadline(now time.Time) Filter {
	return &pastDeadlineFilter{now: now}
}

func (f *pastDeadlineFilter) Name() string { return "past_deadline" }

func (f *pastDeadlineFilter) Apply(_ context.Context, p *placement.Placements) (*placement.Placements, Step, error) {
	initial := p.Len()
	excluded := p.ExcludePastDeadline(f.now)

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}
