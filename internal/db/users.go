package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// User Profile Methods
// -----------------------------------------------------------------------------

// UpsertProfile creates or updates a user profile. The progress column is
// deliberately left untouched on update: progress is owned by SetProgress.
func (db *DB) UpsertProfile(ctx context.Context, p *UserProfile) error {
	if p.UserID == "" {
		return fmt.Errorf("user id cannot be empty")
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Skills == nil {
		p.Skills = map[string]string{}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (user_id, name, email, degree, branch, semester, interests, skills, selected_role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			degree = EXCLUDED.degree,
			branch = EXCLUDED.branch,
			semester = EXCLUDED.semester,
			interests = EXCLUDED.interests,
			skills = EXCLUDED.skills,
			selected_role = EXCLUDED.selected_role,
			updated_at = NOW()`,
		p.UserID, p.Name, p.Email, p.Degree, p.Branch, p.Semester, p.Interests, p.Skills, p.SelectedRole,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user profile by id. Returns nil when not found.
func (db *DB) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var p UserProfile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, name, email, degree, branch, semester, interests, skills, selected_role, progress, created_at, updated_at
		 FROM users WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Name, &p.Email, &p.Degree, &p.Branch, &p.Semester,
		&p.Interests, &p.Skills, &p.SelectedRole, &p.Progress, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// GetProgress retrieves a user's learning progress map. Returns nil when the
// user does not exist.
func (db *DB) GetProgress(ctx context.Context, userID string) (map[string]string, error) {
	var progress map[string]string
	err := db.pool.QueryRow(ctx,
		`SELECT progress FROM users WHERE user_id = $1`,
		userID,
	).Scan(&progress)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		progress = map[string]string{}
	}
	return progress, nil
}

// SetProgress records one skill's learning status for a user, creating a bare
// user row if none exists. The update is a single statement, so concurrent
// writes to the same user resolve last-writer-wins per skill without a
// read-modify-write race in application code.
func (db *DB) SetProgress(ctx context.Context, userID, skillID, status string) error {
	if userID == "" || skillID == "" {
		return fmt.Errorf("user id and skill id cannot be empty")
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (user_id, progress)
		 VALUES ($1, jsonb_build_object($2::text, $3::text))
		 ON CONFLICT (user_id) DO UPDATE SET
			progress = jsonb_set(COALESCE(users.progress, '{}'::jsonb), ARRAY[$2::text], to_jsonb($3::text), true),
			updated_at = NOW()`,
		userID, skillID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to set progress: %w", err)
	}
	return nil
}
