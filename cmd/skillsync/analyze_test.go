package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillPairs(t *testing.T) {
	skills := parseSkillPairs("python=intermediate, sql=beginner,git=Advanced")

	assert.Equal(t, map[string]string{
		"python": "intermediate",
		"sql":    "beginner",
		"git":    "advanced",
	}, skills)
}

func TestParseSkillPairs_DefaultsToBeginner(t *testing.T) {
	skills := parseSkillPairs("python,sql=")

	assert.Equal(t, "beginner", skills["python"])
	assert.Equal(t, "beginner", skills["sql"])
}

func TestParseSkillPairs_Empty(t *testing.T) {
	assert.Empty(t, parseSkillPairs(""))
	assert.Empty(t, parseSkillPairs(" , ,"))
}
