package scoring

// The model consumes a fixed-width numeric feature vector. Skill features
// collapse several catalog skill ids onto one slot, taking the maximum
// observed level; the target role occupies a one-hot slot.

// featureDefaults is the full feature schema with default values. The
// projects_completed and internships features are not collected from users
// yet, so the model sees fixed assumptions for them.
var featureDefaults = map[string]float64{
	"python":                   0,
	"sql":                      0,
	"java":                     0,
	"ml":                       0,
	"stats":                    0,
	"git":                      0,
	"projects_completed":       2,
	"internships":              1,
	"target_role_data_analyst": 0,
	"target_role_ml_engineer":  0,
	"target_role_backend_dev":  0,
}

// skillFeature maps catalog skill ids onto model feature slots. Skill ids
// absent from this table do not influence the model.
var skillFeature = map[string]string{
	"python":           "python",
	"sql":              "sql",
	"java":             "java",
	"machine_learning": "ml",
	"deep_learning":    "ml",
	"tensorflow":       "ml",
	"pandas":           "stats",
	"numpy":            "stats",
	"data_viz":         "stats",
	"git":              "git",
}

// roleFeature maps catalog role ids onto the model's role slots. Roles absent
// from this table fall back to defaultRoleFeature.
var roleFeature = map[string]string{
	"data_analyst":        "data_analyst",
	"data_scientist":      "data_analyst",
	"ai_engineer":         "ml_engineer",
	"backend_developer":   "backend_dev",
	"software_developer":  "backend_dev",
	"web_developer":       "backend_dev",
	"fullstack_developer": "backend_dev",
	"devops_engineer":     "backend_dev",
}

const defaultRoleFeature = "backend_dev"

// BuildFeatureVector assembles the numeric input vector in the order given by
// features. Features the model requires but the schema does not know default
// to 0.
func BuildFeatureVector(userSkills map[string]string, roleID string, features []string) []float64 {
	values := make(map[string]float64, len(featureDefaults))
	for name, def := range featureDefaults {
		values[name] = def
	}

	for skillID, level := range userSkills {
		slot, mapped := skillFeature[skillID]
		if !mapped {
			continue
		}
		v := float64(LevelValue(level))
		if v > values[slot] {
			values[slot] = v
		}
	}

	mappedRole, known := roleFeature[roleID]
	if !known {
		mappedRole = defaultRoleFeature
	}
	roleSlot := "target_role_" + mappedRole
	if _, exists := values[roleSlot]; exists {
		values[roleSlot] = 1
	}

	vector := make([]float64, len(features))
	for i, name := range features {
		vector[i] = values[name]
	}
	return vector
}
