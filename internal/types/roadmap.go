package types

// Roadmap step statuses.
const (
	StepStatusNew     = "new"
	StepStatusUpgrade = "upgrade"
)

// ImproveInput names a skill to upgrade along with the user's current level.
type ImproveInput struct {
	SkillID      string `json:"skill_id" validate:"required"`
	CurrentLevel string `json:"current_level"`
}

// RoadmapResource is a learning resource attached to a roadmap step.
type RoadmapResource struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
	Hours      int    `json:"hours"`
}

// RoadmapStep is one ordered step of a learning plan.
//
// EstimatedHours for a "new" step sums over the skill's full resource set
// even though at most three resources are displayed; for an "upgrade" step it
// sums over the difficulty-filtered set that was actually considered.
type RoadmapStep struct {
	Step           int               `json:"step"`
	SkillID        string            `json:"skill_id"`
	Name           string            `json:"skill_name"`
	Category       string            `json:"category"`
	Status         string            `json:"status"`
	CurrentLevel   string            `json:"current_level,omitempty"`
	TargetLevel    string            `json:"target_level"`
	EstimatedHours int               `json:"estimated_hours"`
	Resources      []RoadmapResource `json:"resources"`
}

// RoadmapPlan is an ordered learning plan plus aggregate estimates.
type RoadmapPlan struct {
	Steps               []RoadmapStep `json:"roadmap"`
	TotalSteps          int           `json:"total_steps"`
	TotalEstimatedHours int           `json:"total_estimated_hours"`
	EstimatedWeeks      int           `json:"estimated_weeks"`
}
