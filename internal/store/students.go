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

// Student retrieves a student profile by id.
func (s *Store) Student(ctx context.Context, id uuid.UUID) (*placement.Student, error) {
	var st placement.Student
	var skillsJSON, desiredJSON, locationsJSON, industriesJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, university, department, level,
		        location, bio, skills, desired_skills, preferred_locations,
		        preferred_industries
		 FROM students WHERE id = $1`,
		id,
	).Scan(&st.ID, &st.FirstName, &st.LastName, &st.University, &st.Department,
		&st.Level, &st.Location, &st.Bio, &skillsJSON, &desiredJSON,
		&locationsJSON, &industriesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get student: %w", err)
	}

	// String sets live in jsonb columns; a null column means an empty set.
	for _, column := range []struct {
		data []byte
		dst  *[]string
	}{
		{skillsJSON, &st.Skills},
		{desiredJSON, &st.DesiredSkills},
		{locationsJSON, &st.PreferredLocations},
		{industriesJSON, &st.PreferredIndustries},
	} {
		if column.data != nil {
			_ = json.Unmarshal(column.data, column.dst)
		}
	}

	return &st, nil
}
