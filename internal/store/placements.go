package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/placemate/placemate/internal/placement"
)

const placementColumns = `p.id, p.company_id, p.title, p.department, p.description,
	       p.requirements, p.required_skills, p.skills_to_learn, p.location,
	       p.remote, p.duration_weeks, p.active, p.deadline, p.created_at,
	       c.id, c.name, c.industry, c.verified`

// ActivePlacements retrieves all active placements joined with their
// companies, newest first. The recency order is the ranking tie-break.
func (s *Store) ActivePlacements(ctx context.Context) (*placement.Placements, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+placementColumns+`
		 FROM placements p
		 JOIN companies c ON c.id = p.company_id
		 WHERE p.active
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list active placements: %w", err)
	}
	defer rows.Close()

	placements := &placement.Placements{}
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements.Items = append(placements.Items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active placements: %w", err)
	}

	return placements, nil
}

// PlacementWithCompany retrieves a single placement joined with its company.
func (s *Store) PlacementWithCompany(ctx context.Context, id uuid.UUID) (*placement.Placement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+placementColumns+`
		 FROM placements p
		 JOIN companies c ON c.id = p.company_id
		 WHERE p.id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get placement: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get placement: %w", err)
		}
		return nil, fmt.Errorf("placement %s: %w", id, ErrNotFound)
	}

	return scanPlacement(rows)
}

func scanPlacement(row pgx.Row) (*placement.Placement, error) {
	var p placement.Placement
	var company placement.Company
	var requiredJSON, learnJSON []byte
	var deadline sql.NullTime
	var createdAt time.Time

	err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Department, &p.Description,
		&p.Requirements, &requiredJSON, &learnJSON, &p.Location,
		&p.Remote, &p.DurationWeeks, &p.Active, &deadline, &createdAt,
		&company.ID, &company.Name, &company.Industry, &company.Verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan placement: %w", err)
	}

	if requiredJSON != nil {
		_ = json.Unmarshal(requiredJSON, &p.RequiredSkills)
	}
	if learnJSON != nil {
		_ = json.Unmarshal(learnJSON, &p.SkillsToLearn)
	}
	if deadline.Valid {
		p.Deadline = deadline.Time
	}
	p.CreatedAt = createdAt
	p.Company = &company

	return &p, nil
}
