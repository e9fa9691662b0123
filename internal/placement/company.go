package placement

import "github.com/google/uuid"

// Company is the issuing company profile joined into a placement. The
// Verified flag is display-only and never feeds a score.
type Company struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Industry string    `json:"industry,omitempty"`
	Verified bool      `json:"verified"`
}
