package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_FiltersSkillsUserAlreadyHas(t *testing.T) {
	userSkills := map[string]string{
		"python": "intermediate",
		"sql":    "beginner",
	}

	recs := Recommend(userSkills, "data_analyst")
	assert.Equal(t, []string{"pandas", "data_viz"}, recs.Priority)
	assert.Equal(t, []string{"numpy", "communication", "problem_solving"}, recs.Additional)
}

func TestRecommend_EmptyUserSkillsReturnsFullLists(t *testing.T) {
	recs := Recommend(nil, "data_scientist")
	assert.Equal(t, []string{"python", "machine_learning", "pandas", "numpy", "sql"}, recs.Priority)
	assert.Equal(t, []string{"deep_learning", "tensorflow", "data_viz"}, recs.Additional)
}

func TestRecommend_CapsAtFiveAndThree(t *testing.T) {
	recs := Recommend(nil, "data_scientist")
	assert.LessOrEqual(t, len(recs.Priority), 5)
	assert.LessOrEqual(t, len(recs.Additional), 3)
}

func TestRecommend_UnknownRoleUsesSoftwareDeveloperTable(t *testing.T) {
	recs := Recommend(nil, "devops_engineer")
	assert.Equal(t, []string{"python", "dsa", "oop", "git", "sql"}, recs.Priority)
	assert.Equal(t, []string{"system_design", "java", "problem_solving"}, recs.Additional)
}

func TestRecommend_AllSkillsKnownYieldsEmptyLists(t *testing.T) {
	userSkills := map[string]string{
		"python": "x", "sql": "x", "pandas": "x", "data_viz": "x",
		"numpy": "x", "communication": "x", "problem_solving": "x",
	}

	recs := Recommend(userSkills, "data_analyst")
	assert.Empty(t, recs.Priority)
	assert.Empty(t, recs.Additional)
}
