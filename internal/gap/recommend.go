package gap

import "github.com/jonathan/skillsync/internal/types"

// Caps on how many recommendations a report carries.
const (
	maxPrioritySkills   = 5
	maxAdditionalSkills = 3
)

// roleRecommendations is the fixed per-role recommendation table. Core skills
// become priority recommendations, additional skills the nice-to-have list.
// Roles absent from this table use the software_developer entry; the catalog
// may list role ids this table does not cover.
var roleRecommendations = map[string]struct {
	core       []string
	additional []string
}{
	"data_analyst": {
		core:       []string{"python", "sql", "pandas", "data_viz"},
		additional: []string{"numpy", "communication", "problem_solving"},
	},
	"data_scientist": {
		core:       []string{"python", "machine_learning", "pandas", "numpy", "sql"},
		additional: []string{"deep_learning", "tensorflow", "data_viz"},
	},
	"ai_engineer": {
		core:       []string{"python", "machine_learning", "deep_learning", "tensorflow"},
		additional: []string{"numpy", "pandas", "system_design"},
	},
	"backend_developer": {
		core:       []string{"python", "sql", "rest_api", "git", "docker"},
		additional: []string{"mongodb", "aws", "system_design"},
	},
	"software_developer": {
		core:       []string{"python", "dsa", "oop", "git", "sql"},
		additional: []string{"system_design", "java", "problem_solving"},
	},
	"web_developer": {
		core:       []string{"html", "css", "javascript", "react", "git"},
		additional: []string{"nodejs", "rest_api", "mongodb"},
	},
}

const defaultRecommendationRole = "software_developer"

// Recommend returns the skills the user should pick up for the role, skipping
// skills already present in the user's map: up to 5 core skills as priority
// and up to 3 additional.
func Recommend(userSkills map[string]string, roleID string) types.Recommendations {
	entry, ok := roleRecommendations[roleID]
	if !ok {
		entry = roleRecommendations[defaultRecommendationRole]
	}

	return types.Recommendations{
		Priority:   filterKnown(entry.core, userSkills, maxPrioritySkills),
		Additional: filterKnown(entry.additional, userSkills, maxAdditionalSkills),
	}
}

// filterKnown returns up to limit skill ids from candidates that are absent
// from userSkills, preserving candidate order.
func filterKnown(candidates []string, userSkills map[string]string, limit int) []string {
	result := make([]string, 0, limit)
	for _, skillID := range candidates {
		if _, known := userSkills[skillID]; known {
			continue
		}
		result = append(result, skillID)
		if len(result) == limit {
			break
		}
	}
	return result
}
