package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillsync/internal/types"
)

func TestHandleListSkills(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/skills", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SkillListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalSkills)
	assert.Len(t, resp.Skills["Data Science"], 2)
}

func TestHandleGetSkill(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/skills/python", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SkillDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Python", resp.Name)
	require.Len(t, resp.Resources, 1)
	assert.Equal(t, "Python Basics", resp.Resources[0].Name)
}

func TestHandleGetSkill_NotFound(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/skills/cobol", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListRoles(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/job-roles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Roles []RoleListEntry `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Roles, 1)
	assert.Equal(t, "data_analyst", resp.Roles[0].RoleID)
	assert.Equal(t, 4, resp.Roles[0].SkillCount)
}

func TestHandleGetRole(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/job-roles/data_analyst", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RoleDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Data Analyst", resp.Name)
	assert.Len(t, resp.RequiredSkills, 4)
}

func TestHandleGetRole_NotFound(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/job-roles/astronaut", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetResources_UnknownSkillIsEmpty(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodGet, "/api/resources/cobol", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Resources []types.LearningResource `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Resources)
}

func TestHandleAnalyzeGap(t *testing.T) {
	s := newTestServer(nil)

	req := types.AnalyzeGapRequest{
		UserSkills: map[string]string{"python": "intermediate", "sql": "beginner"},
		TargetRole: "data_analyst",
	}
	w := doJSON(t, s, http.MethodPost, "/api/analyze-gap", req)

	assert.Equal(t, http.StatusOK, w.Code)
	var report types.GapReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "data_analyst", report.TargetRole.RoleID)
	assert.Len(t, report.Proficient, 1)
	assert.Len(t, report.ToImprove, 1)
	assert.Len(t, report.Missing, 2)
	assert.Equal(t, 4, report.Summary.TotalRequired)
}

func TestHandleAnalyzeGap_MissingTargetRole(t *testing.T) {
	s := newTestServer(nil)

	req := types.AnalyzeGapRequest{UserSkills: map[string]string{"python": "beginner"}}
	w := doJSON(t, s, http.MethodPost, "/api/analyze-gap", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "target_role is required", resp["error"])
}

func TestHandleAnalyzeGap_UnknownRole(t *testing.T) {
	s := newTestServer(nil)

	req := types.AnalyzeGapRequest{TargetRole: "astronaut"}
	w := doJSON(t, s, http.MethodPost, "/api/analyze-gap", req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAnalyzeGap_InvalidBody(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodPost, "/api/analyze-gap", "not an object")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRoadmap(t *testing.T) {
	s := newTestServer(nil)

	req := types.RoadmapRequest{
		MissingSkills: []string{"pandas"},
		SkillsToImprove: []types.ImproveInput{
			{SkillID: "python", CurrentLevel: "beginner"},
		},
	}
	w := doJSON(t, s, http.MethodPost, "/api/roadmap", req)

	assert.Equal(t, http.StatusOK, w.Code)
	var plan types.RoadmapPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, 2, plan.TotalSteps)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "pandas", plan.Steps[0].SkillID)
	assert.Equal(t, types.StepStatusNew, plan.Steps[0].Status)
	assert.Equal(t, "python", plan.Steps[1].SkillID)
	assert.Equal(t, types.StepStatusUpgrade, plan.Steps[1].Status)
}

func TestHandleRoadmap_EmptyInputs(t *testing.T) {
	s := newTestServer(nil)

	w := doJSON(t, s, http.MethodPost, "/api/roadmap", types.RoadmapRequest{})

	assert.Equal(t, http.StatusOK, w.Code)
	var plan types.RoadmapPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, 0, plan.TotalSteps)
	assert.Equal(t, 1, plan.EstimatedWeeks)
}
