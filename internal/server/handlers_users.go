package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/skillsync/internal/db"
	"github.com/jonathan/skillsync/internal/types"
)

// ---------------------------------------------------------------------
// User Profile and Progress Handlers
// ---------------------------------------------------------------------

// requireStore guards the user endpoints: a deployment without a database
// runs the core API only.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "User store is not configured")
		return false
	}
	return true
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := r.PathValue("id")

	var req types.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := &db.UserProfile{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Degree:       req.Degree,
		Branch:       req.Branch,
		Semester:     req.Semester,
		Interests:    req.Interests,
		Skills:       req.Skills,
		SelectedRole: req.SelectedRole,
	}
	if err := s.store.UpsertProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := r.PathValue("id")

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := r.PathValue("id")

	progress, err := s.store.GetProgress(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if progress == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id":  userID,
		"progress": progress,
	})
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := r.PathValue("id")

	var req types.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "skill_id and a valid status are required")
		return
	}

	if err := s.store.SetProgress(r.Context(), userID, req.SkillID, req.Status); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}
