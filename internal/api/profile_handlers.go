package api

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vytor/leitnerflash/internal/logger"
)

type createProfileRequest struct {
	Username string `json:"username"`
}

type setDayRequest struct {
	Day *int `json:"day"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.ProfileService.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profiles)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(w, r, &req); err != nil && !stderrors.Is(err, io.EOF) {
		handleError(w, r, err)
		return
	}

	profile, err := s.ProfileService.CreateProfile(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("profile created: id=%d", profile.ID)
	writeJSON(w, r, http.StatusCreated, profile)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, profileFromContext(r.Context()))
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if err := s.ProfileService.DeleteProfile(r.Context(), profile.ID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetDay sets the profile's day from {"day": n}, or advances it by one
// when the body is empty or omits day.
func (s *Server) handleSetDay(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	var req setDayRequest
	if err := decodeJSON(w, r, &req); err != nil && !stderrors.Is(err, io.EOF) {
		handleError(w, r, err)
		return
	}

	var err error
	if req.Day == nil {
		profile, err = s.ProfileService.AdvanceDay(r.Context(), profile.ID)
	} else {
		profile, err = s.ProfileService.SetDay(r.Context(), profile.ID, *req.Day)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profile)
}
