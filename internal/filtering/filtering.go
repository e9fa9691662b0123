// Package filtering removes placements that must never reach the scorers:
// ones the student already applied to and ones past their deadline.
package filtering

import (
	"context"
	"fmt"

	"github.com/placemate/placemate/internal/placement"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to placements.
type Filter interface {
	Name() string
	Apply(ctx context.Context, p *placement.Placements) (*placement.Placements, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially. An empty resulting list is
// a valid outcome, not an error.
func Run(ctx context.Context, steps []Filter, p *placement.Placements, logger *zap.Logger) (*placement.Placements, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, step := range steps {
		next, info, err := step.Apply(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		p = next
	}

	return p, nil
}
