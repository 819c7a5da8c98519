package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeGapRequest represents the request body for gap analysis.
type AnalyzeGapRequest struct {
	UserSkills map[string]string `json:"user_skills"`
	TargetRole string            `json:"target_role" validate:"required"`
}

// RoadmapRequest represents the request body for roadmap generation.
type RoadmapRequest struct {
	MissingSkills   []string       `json:"missing_skills"`
	SkillsToImprove []ImproveInput `json:"skills_to_improve" validate:"dive"`
}

// UpdateProgressRequest updates one skill's learning status for a user.
type UpdateProgressRequest struct {
	SkillID string `json:"skill_id" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=not_started in_progress completed"`
}

// SaveProfileRequest saves or updates a user profile. Progress is managed
// separately and is never written through this request.
type SaveProfileRequest struct {
	Name         string            `json:"name"`
	Email        string            `json:"email" validate:"omitempty,email"`
	Degree       string            `json:"degree"`
	Branch       string            `json:"branch"`
	Semester     string            `json:"semester"`
	Interests    []string          `json:"interests"`
	Skills       map[string]string `json:"skills"`
	SelectedRole string            `json:"selected_role"`
}

// Validate validates the AnalyzeGapRequest using the validator.
func (r *AnalyzeGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProgressRequest using the validator.
func (r *UpdateProgressRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveProfileRequest using the validator.
func (r *SaveProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
