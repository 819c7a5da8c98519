package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillsync/internal/types"
)

func TestLoad_SkillsExcludeIncompleteRows(t *testing.T) {
	cat := Load("testdata")

	// 5 valid rows; the two with missing mandatory fields are excluded.
	require.Len(t, cat.Skills(), 5)

	s, ok := cat.FindSkill("python")
	require.True(t, ok)
	assert.Equal(t, "Python", s.Name)
	assert.Equal(t, "Programming", s.Category)

	_, ok = cat.FindSkill("ghost_skill")
	assert.False(t, ok, "row with missing name should be excluded")
}

func TestLoad_RoleRequiredSkillsAreTrimmed(t *testing.T) {
	cat := Load("testdata")

	role, ok := cat.FindRole("data_analyst")
	require.True(t, ok)
	assert.Equal(t, []string{"python", "sql", "pandas", "data_viz"}, role.RequiredSkillIDs)

	_, ok = cat.FindRole("broken_role")
	assert.False(t, ok, "row with missing name should be excluded")
}

func TestLoad_ResourcesSkipMalformedHours(t *testing.T) {
	cat := Load("testdata")

	// "lots" and -3 hour rows are excluded; difficulty is normalized.
	res := cat.ResourcesFor("git")
	require.Len(t, res, 1)
	assert.Equal(t, "Pro Git", res[0].Name)
	assert.Equal(t, "intermediate", res[0].Difficulty)
	assert.Equal(t, 12, res[0].EstimatedHours)
}

func TestLoad_ResourcesPreserveFileOrder(t *testing.T) {
	cat := Load("testdata")

	res := cat.ResourcesFor("python")
	require.Len(t, res, 2)
	assert.Equal(t, "Python Crash Course", res[0].Name)
	assert.Equal(t, "Fluent Python", res[1].Name)
}

func TestLoad_MissingDirectoryYieldsEmptyCatalog(t *testing.T) {
	cat := Load("testdata/does-not-exist")

	assert.Empty(t, cat.Skills())
	assert.Empty(t, cat.Roles())
	assert.Empty(t, cat.ResourcesFor("python"))

	_, ok := cat.FindSkill("python")
	assert.False(t, ok)
	_, ok = cat.FindRole("data_analyst")
	assert.False(t, ok)
}

func TestCatalog_LookupsAreCaseSensitive(t *testing.T) {
	cat := Load("testdata")

	_, ok := cat.FindSkill("Python")
	assert.False(t, ok)
	_, ok = cat.FindRole("Data_Analyst")
	assert.False(t, ok)
}

func TestCatalog_SkillsByCategory(t *testing.T) {
	cat := New(
		[]types.Skill{
			{SkillID: "python", Name: "Python", Category: "Programming"},
			{SkillID: "java", Name: "Java", Category: "Programming"},
			{SkillID: "sql", Name: "SQL", Category: "Database"},
		},
		nil, nil,
	)

	grouped := cat.SkillsByCategory()
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["Programming"], 2)
	assert.Len(t, grouped["Database"], 1)
}
