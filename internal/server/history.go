package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"screencheck/internal/history"
	"screencheck/pkg/types"

	"github.com/alexedwards/flow"
)

type listSessionsQuery struct {
	Limit int `form:"limit"`
}

type sessionsResponse struct {
	Sessions []types.Session `json:"sessions"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Failed  int    `json:"failed_deletes,omitempty"`
	Total   int    `json:"total_deletes,omitempty"`
	Session string `json:"session_id,omitempty"`
}

func (s *Service) handleListSessions(w http.ResponseWriter, r *http.Request) {
	var query listSessionsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	sessions, err := s.history.Load(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("history load failed")
		s.writeError(w, http.StatusBadGateway, "failed to load history")
		return
	}

	if query.Limit > 0 && query.Limit < len(sessions) {
		sessions = sessions[:query.Limit]
	}

	s.writeJSON(w, http.StatusOK, sessionsResponse{Sessions: sessions})
}

func (s *Service) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := flow.Param(r.Context(), "id")

	err := s.history.DeleteSession(r.Context(), sessionID)
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if errors.Is(err, history.ErrSessionNotFound) {
		s.writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var cascadeErr *history.CascadeDeleteError
	if errors.As(err, &cascadeErr) {
		s.logger.WithError(err).Error("session delete failed")
		s.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "one or more records could not be deleted",
			Failed:  cascadeErr.Failed,
			Total:   cascadeErr.Total,
			Session: cascadeErr.SessionID,
		})
		return
	}

	s.logger.WithError(err).Error("session delete failed")
	s.writeError(w, http.StatusInternalServerError, "failed to delete session")
}

func (s *Service) handleUploadDetail(w http.ResponseWriter, r *http.Request) {
	uploadID := flow.Param(r.Context(), "id")

	upload, err := s.history.UploadDetail(r.Context(), uploadID)
	if err != nil {
		s.logger.WithError(err).Error("upload detail fetch failed")
		s.writeError(w, http.StatusBadGateway, "failed to fetch upload")
		return
	}

	s.writeJSON(w, http.StatusOK, types.UploadDetail{Upload: *upload})
}

func (s *Service) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.history.Stats(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("stats fetch failed")
		s.writeError(w, http.StatusBadGateway, "failed to fetch upload statistics")
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
