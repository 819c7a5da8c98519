package types

// Proficiency levels used throughout gap analysis and roadmap building.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// SkillWithLevel is a required skill the user already meets the bar for.
type SkillWithLevel struct {
	SkillID       string `json:"skill_id"`
	Name          string `json:"skill_name"`
	Category      string `json:"category"`
	CurrentLevel  string `json:"current_level"`
	RequiredLevel string `json:"required_level"`
}

// SkillWithGap is a required skill the user has but below the required level.
// Gap is the difference between the required level value and the user's.
type SkillWithGap struct {
	SkillID       string `json:"skill_id"`
	Name          string `json:"skill_name"`
	Category      string `json:"category"`
	CurrentLevel  string `json:"current_level"`
	RequiredLevel string `json:"required_level"`
	Gap           int    `json:"gap"`
}

// MissingSkill is a required skill absent from the user's skill map.
type MissingSkill struct {
	SkillID       string `json:"skill_id"`
	Name          string `json:"skill_name"`
	Category      string `json:"category"`
	RequiredLevel string `json:"required_level"`
}

// RoleSummary identifies the analyzed role in a gap report.
type RoleSummary struct {
	RoleID string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon,omitempty"`
}

// Recommendations lists skill ids the user should pick up next,
// split into core (priority) and nice-to-have (additional) sets.
type Recommendations struct {
	Priority   []string `json:"priority_skills"`
	Additional []string `json:"additional_skills"`
}

// GapSummary carries headline counts for a gap report.
type GapSummary struct {
	TotalRequired  int `json:"total_required"`
	Proficient     int `json:"proficient"`
	ToImprove      int `json:"to_improve"`
	Missing        int `json:"missing"`
	ReadinessScore int `json:"readiness_score"`
}

// GapReport is the full result of analyzing a user's skills against a role.
//
// MatchPercentage comes from the readiness scorer and is intentionally
// independent of the proficient/to_improve/missing buckets: a user proficient
// in every listed skill can still score below 100. The two views are separate
// by contract and are not reconciled.
type GapReport struct {
	TargetRole      RoleSummary      `json:"target_role"`
	MatchPercentage int              `json:"match_percentage"`
	Proficient      []SkillWithLevel `json:"proficient_skills"`
	ToImprove       []SkillWithGap   `json:"skills_to_improve"`
	Missing         []MissingSkill   `json:"missing_skills"`
	Recommendations Recommendations  `json:"recommendations"`
	Summary         GapSummary       `json:"summary"`
}
