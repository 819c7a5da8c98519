package scoring

import "math"

// Per-level weight and per-skill ceiling for the fallback formula.
const (
	fallbackLevelWeight = 10
	fallbackMaxPerSkill = valueAdvanced * fallbackLevelWeight
)

// fallbackRoleSkills is the fixed per-role required-skill table for the
// fallback strategy. Roles absent from this table use fallbackDefaultSkills.
var fallbackRoleSkills = map[string][]string{
	"data_analyst":        {"python", "sql", "pandas", "data_viz"},
	"data_scientist":      {"python", "machine_learning", "pandas", "numpy"},
	"ai_engineer":         {"python", "machine_learning", "deep_learning", "tensorflow"},
	"ml_engineer":         {"python", "machine_learning", "deep_learning", "tensorflow"},
	"backend_developer":   {"python", "java", "sql", "git", "rest_api"},
	"software_developer":  {"python", "java", "dsa", "oop", "git"},
	"web_developer":       {"html", "css", "javascript", "react", "git"},
	"fullstack_developer": {"html", "css", "javascript", "react", "nodejs", "git"},
}

// fallbackDefaultSkills is the generic required set for unknown roles.
var fallbackDefaultSkills = []string{"python", "git"}

// FallbackScore computes the deterministic readiness score:
// sum of level_value*10 over the role's required skills present in userSkills,
// as a rounded percentage of len(required)*30. A role with an empty required
// set scores 0 rather than dividing by zero.
func FallbackScore(userSkills map[string]string, roleID string) int {
	required, ok := fallbackRoleSkills[roleID]
	if !ok {
		required = fallbackDefaultSkills
	}

	maxScore := len(required) * fallbackMaxPerSkill
	if maxScore == 0 {
		return 0
	}

	score := 0
	for _, skillID := range required {
		if level, present := userSkills[skillID]; present {
			score += LevelValue(level) * fallbackLevelWeight
		}
	}

	return int(math.Round(float64(score) / float64(maxScore) * 100))
}
