package types

import (
	"github.com/go-playground/validator/v10"
)

// Defaults and bounds for recommendation request parameters.
const (
	DefaultLimit    = 10
	MaxLimit        = 100
	DefaultMinScore = 0.3
)

// RecommendRequest is the inbound request for a recommendation pass.
// Only user_id is strict; every other parameter is clamped to valid bounds
// rather than rejected.
type RecommendRequest struct {
	UserID   string   `json:"user_id" validate:"required,uuid"`
	Limit    int      `json:"limit"`
	MinScore *float64 `json:"min_score"`
	UseAI    *bool    `json:"use_ai"`
	Refresh  bool     `json:"refresh"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// EffectiveLimit returns the requested limit clamped to [1, MaxLimit],
// defaulting when unset or negative.
func (r *RecommendRequest) EffectiveLimit() int {
	if r.Limit <= 0 {
		return DefaultLimit
	}
	if r.Limit > MaxLimit {
		return MaxLimit
	}
	return r.Limit
}

// EffectiveMinScore returns the requested threshold clamped to [0,1],
// defaulting when unset.
func (r *RecommendRequest) EffectiveMinScore() float64 {
	if r.MinScore == nil {
		return DefaultMinScore
	}
	s := *r.MinScore
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// EffectiveUseAI returns whether the AI skill-match path is requested
// (default true).
func (r *RecommendRequest) EffectiveUseAI() bool {
	if r.UseAI == nil {
		return true
	}
	return *r.UseAI
}

// RecommendResponse is the success response for a recommendation pass.
type RecommendResponse struct {
	Success         bool             `json:"success"`
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalAnalyzed   int              `json:"total_analyzed"`
	TotalMatches    int              `json:"total_matches"`
	Cached          bool             `json:"cached,omitempty"`
}

// ErrorResponse is the failure response shape.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
