package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/metrics"
	"github.com/jonathan/opportunity-matcher/internal/store"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// handleRecommend runs a recommendation pass for the user in the request
// body. A cached result is returned unless the request asks for a refresh.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecommendationRequests.WithLabelValues("bad_request").Inc()
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecommendationRequests.WithLabelValues("bad_request").Inc()
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Message: err.Error()}).Error())
		return
	}

	resp, err := s.engine.Recommend(r.Context(), &req)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			metrics.RecommendationRequests.WithLabelValues("not_found").Inc()
			s.errorResponse(w, http.StatusNotFound, "quiz responses not found for user")
			return
		}
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		s.log.Error("recommendation pass failed", zap.String("user_id", req.UserID), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "failed to generate recommendations")
		return
	}

	metrics.RecommendationRequests.WithLabelValues("ok").Inc()
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetCached returns the stored recommendation set for a user without
// recomputing. 404 when nothing is cached.
func (s *Server) handleGetCached(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	entry, err := s.engine.Cached(r.Context(), userID)
	if err != nil {
		s.log.Error("cache read failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to read cached recommendations")
		return
	}
	if entry == nil {
		s.errorResponse(w, http.StatusNotFound, "no cached recommendations for user")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RecommendResponse{
		Success:         true,
		UserID:          userID.String(),
		Recommendations: entry.Recommendations,
		TotalAnalyzed:   entry.TotalAnalyzed,
		TotalMatches:    len(entry.Recommendations),
		Cached:          true,
	})
}

// handleInvalidate drops a user's cached recommendations.
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	if err := s.engine.Invalidate(r.Context(), userID); err != nil {
		s.log.Error("cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to invalidate cache")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "user_id": userID.String()})
}

// pathUserID parses the {user_id} path segment, writing the error response
// itself on failure.
func (s *Server) pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("user_id")
	userID, err := uuid.Parse(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrInvalidUserID{Value: raw}).Error())
		return uuid.Nil, false
	}
	return userID, true
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Success: false, Error: message})
}
