package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/skillsync/internal/types"
)

// SkillListResponse is the response for GET /api/skills.
type SkillListResponse struct {
	Skills      map[string][]types.Skill `json:"skills_by_category"`
	TotalSkills int                      `json:"total_skills"`
}

// SkillDetailResponse is the response for GET /api/skills/{id}.
type SkillDetailResponse struct {
	types.Skill
	Resources []types.LearningResource `json:"resources"`
}

// RoleListEntry is one role in the GET /api/job-roles response.
type RoleListEntry struct {
	types.JobRole
	SkillCount int `json:"skill_count"`
}

// RoleDetailResponse is the response for GET /api/job-roles/{id}, with the
// role's skill requirements resolved against the catalog. Requirements that
// do not resolve are omitted.
type RoleDetailResponse struct {
	RoleID         string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Icon           string        `json:"icon,omitempty"`
	RequiredSkills []types.Skill `json:"required_skills"`
}

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SkillListResponse{
		Skills:      s.catalog.SkillsByCategory(),
		TotalSkills: len(s.catalog.Skills()),
	})
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skillID := r.PathValue("id")

	skill, ok := s.catalog.FindSkill(skillID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	resources := s.catalog.ResourcesFor(skillID)
	if resources == nil {
		resources = []types.LearningResource{}
	}
	s.jsonResponse(w, http.StatusOK, SkillDetailResponse{Skill: skill, Resources: resources})
}

func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	roles := s.catalog.Roles()
	entries := make([]RoleListEntry, 0, len(roles))
	for _, role := range roles {
		entries = append(entries, RoleListEntry{JobRole: role, SkillCount: len(role.RequiredSkillIDs)})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": entries})
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	roleID := r.PathValue("id")

	role, ok := s.catalog.FindRole(roleID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Role not found")
		return
	}

	resolved := make([]types.Skill, 0, len(role.RequiredSkillIDs))
	for _, skillID := range role.RequiredSkillIDs {
		if skill, found := s.catalog.FindSkill(skillID); found {
			resolved = append(resolved, skill)
		}
	}

	s.jsonResponse(w, http.StatusOK, RoleDetailResponse{
		RoleID:         role.RoleID,
		Name:           role.Name,
		Description:    role.Description,
		Icon:           role.Icon,
		RequiredSkills: resolved,
	})
}

func (s *Server) handleGetResources(w http.ResponseWriter, r *http.Request) {
	skillID := r.PathValue("skill_id")

	resources := s.catalog.ResourcesFor(skillID)
	if resources == nil {
		resources = []types.LearningResource{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resources": resources})
}

func (s *Server) handleAnalyzeGap(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "target_role is required")
		return
	}

	report, err := s.analyzer.Analyze(req.UserSkills, req.TargetRole)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := s.builder.Build(req.MissingSkills, req.SkillsToImprove)
	s.jsonResponse(w, http.StatusOK, plan)
}
