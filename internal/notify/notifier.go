// Package notify is the boundary to the notification delivery system. The
// engine only triggers it once per successful application; delivery itself is
// someone else's job.
package notify

import (
	"context"

	"github.com/placemate/placemate/internal/placement"
	"go.uber.org/zap"
)

// Notifier is invoked after an application is successfully persisted.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, app *placement.Application, p *placement.Placement) error
}

// LogNotifier writes notifications to the structured log. It stands in where
// no delivery channel is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ApplicationSubmitted(_ context.Context, app *placement.Application, p *placement.Placement) error {
	n.logger.Info("new application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("student_id", app.StudentID.String()),
		zap.String("placement_id", app.PlacementID.String()),
		zap.String("placement_title", p.Title),
		zap.Float64("match_overall", app.MatchOverall),
	)
	return nil
}
