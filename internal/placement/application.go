package placement

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses. Transitions are owned by the company review flow; the
// engine only creates pending applications and reads existing ones for dedup.
const (
	StatusPending   = "pending"
	StatusReviewing = "reviewing"
	StatusInterview = "interview"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

// Application links a student to a placement. The match score captured at
// apply time is immutable historical data.
type Application struct {
	ID             uuid.UUID      `json:"id"`
	StudentID      uuid.UUID      `json:"student_id"`
	PlacementID    uuid.UUID      `json:"placement_id"`
	Status         string         `json:"status"`
	CoverLetter    string         `json:"cover_letter,omitempty"`
	MatchOverall   float64        `json:"match_overall"`
	MatchBreakdown map[string]int `json:"match_breakdown,omitempty"`
	SubmittedAt    time.Time      `json:"submitted_at,omitzero"`
}

type Applications struct {
	Items []*Application
}

func (a *Applications) Len() int {
	return len(a.Items)
}

func (a *Applications) PlacementIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Items))
	for _, app := range a.Items {
		ids = append(ids, app.PlacementID)
	}
	return ids
}

func (a *Applications) FindByPlacement(placementID uuid.UUID) *Application {
	for _, app := range a.Items {
		if app.PlacementID == placementID {
			return app
		}
	}
	return nil
}
