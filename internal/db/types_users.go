package db

import "time"

// UserProfile represents a stored user profile including learning progress.
// Progress maps skill_id to a learning status (not_started, in_progress,
// completed).
type UserProfile struct {
	UserID       string            `json:"user_id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Degree       string            `json:"degree,omitempty"`
	Branch       string            `json:"branch,omitempty"`
	Semester     string            `json:"semester,omitempty"`
	Interests    []string          `json:"interests"`
	Skills       map[string]string `json:"skills"`
	SelectedRole string            `json:"selected_role,omitempty"`
	Progress     map[string]string `json:"progress"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
