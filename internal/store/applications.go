package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/placemate/placemate/internal/placement"
)

// ApplicationsByStudent retrieves every application the student has made.
// The engine uses the result to exclude already-applied placements.
func (s *Store) ApplicationsByStudent(ctx context.Context, studentID uuid.UUID) (*placement.Applications, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, student_id, placement_id, status, cover_letter,
		        match_overall, match_breakdown, submitted_at
		 FROM applications WHERE student_id = $1`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := &placement.Applications{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps.Items = append(apps.Items, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

// ApplicationFor retrieves the application linking the student to the
// placement, or ErrNotFound when the student has not applied.
func (s *Store) ApplicationFor(ctx context.Context, studentID, placementID uuid.UUID) (*placement.Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, student_id, placement_id, status, cover_letter,
		        match_overall, match_breakdown, submitted_at
		 FROM applications WHERE student_id = $1 AND placement_id = $2`,
		studentID, placementID,
	)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get application: %w", err)
		}
		return nil, ErrNotFound
	}

	return scanApplication(rows)
}

// InsertApplication persists a new application, capturing the match score and
// cover letter at apply time.
func (s *Store) InsertApplication(ctx context.Context, app *placement.Application) error {
	breakdownJSON, err := json.Marshal(app.MatchBreakdown)
	if err != nil {
		return fmt.Errorf("marshal match breakdown: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO applications
		        (id, student_id, placement_id, status, cover_letter,
		         match_overall, match_breakdown, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.StudentID, app.PlacementID, app.Status, app.CoverLetter,
		app.MatchOverall, breakdownJSON, app.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func scanApplication(row pgx.Row) (*placement.Application, error) {
	var app placement.Application
	var breakdownJSON []byte

	err := row.Scan(&app.ID, &app.StudentID, &app.PlacementID, &app.Status,
		&app.CoverLetter, &app.MatchOverall, &breakdownJSON, &app.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	if breakdownJSON != nil {
		_ = json.Unmarshal(breakdownJSON, &app.MatchBreakdown)
	}

	return &app, nil
}
