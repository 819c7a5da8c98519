// Package types provides type definitions for structured data used throughout the skillsync system.
package types

// Skill represents a single skill in the reference catalog.
type Skill struct {
	SkillID     string `json:"skill_id"`
	Name        string `json:"skill_name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// JobRole represents a job role and its ordered skill requirements.
type JobRole struct {
	RoleID           string   `json:"role_id"`
	Name             string   `json:"role_name"`
	Description      string   `json:"description,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	RequiredSkillIDs []string `json:"required_skills"`
}

// LearningResource represents a single learning resource attached to a skill.
type LearningResource struct {
	SkillID        string `json:"skill_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	Difficulty     string `json:"difficulty"`
	EstimatedHours int    `json:"estimated_hours"`
}
