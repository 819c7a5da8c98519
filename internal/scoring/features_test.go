package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeatureVector_SkillsCollapseToMax(t *testing.T) {
	userSkills := map[string]string{
		"machine_learning": "beginner",
		"deep_learning":    "advanced",
		"tensorflow":       "intermediate",
	}

	vector := BuildFeatureVector(userSkills, "ai_engineer", []string{"ml"})
	require.Len(t, vector, 1)
	assert.Equal(t, 3.0, vector[0], "ml slot takes the max level among mapped skills")
}

func TestBuildFeatureVector_RoleOneHot(t *testing.T) {
	features := []string{
		"target_role_data_analyst",
		"target_role_ml_engineer",
		"target_role_backend_dev",
	}

	vector := BuildFeatureVector(nil, "data_scientist", features)
	assert.Equal(t, []float64{1, 0, 0}, vector, "data_scientist maps onto the data_analyst slot")

	vector = BuildFeatureVector(nil, "some_new_role", features)
	assert.Equal(t, []float64{0, 0, 1}, vector, "unknown roles fall back to backend_dev")
}

func TestBuildFeatureVector_DefaultAssumptions(t *testing.T) {
	vector := BuildFeatureVector(nil, "data_analyst", []string{"projects_completed", "internships"})
	assert.Equal(t, []float64{2, 1}, vector)
}

func TestBuildFeatureVector_UnknownModelFeatureIsZero(t *testing.T) {
	vector := BuildFeatureVector(map[string]string{"python": "advanced"}, "data_analyst",
		[]string{"python", "certifications"})
	assert.Equal(t, []float64{3, 0}, vector)
}

func TestBuildFeatureVector_UnmappedSkillsIgnored(t *testing.T) {
	userSkills := map[string]string{
		"communication": "advanced",
		"python":        "beginner",
	}

	vector := BuildFeatureVector(userSkills, "data_analyst", []string{"python"})
	assert.Equal(t, []float64{1}, vector)
}

func TestBuildFeatureVector_OrderFollowsModelFeatureList(t *testing.T) {
	userSkills := map[string]string{
		"python": "intermediate",
		"sql":    "beginner",
	}

	vector := BuildFeatureVector(userSkills, "data_analyst", []string{"sql", "python"})
	assert.Equal(t, []float64{1, 2}, vector)
}
