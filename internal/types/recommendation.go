package types

import (
	"time"

	"github.com/google/uuid"
)

// Factor names used as ScoreBreakdown keys.
const (
	FactorStartupCost    = "startup_cost"
	FactorTimeCommitment = "time_commitment"
	FactorSkillMatch     = "skill_match"
	FactorScheduleFit    = "schedule_fit"
	FactorRiskTolerance  = "risk_tolerance"
	FactorTechComfort    = "tech_comfort"
	FactorTaskPreference = "task_preference"
)

// FactorNames lists all scoring factors in weight order.
var FactorNames = []string{
	FactorStartupCost,
	FactorTimeCommitment,
	FactorSkillMatch,
	FactorScheduleFit,
	FactorRiskTolerance,
	FactorTechComfort,
	FactorTaskPreference,
}

// ScoreBreakdown maps factor name to its score in [0,1].
type ScoreBreakdown map[string]float64

// SkillMatchSource tags which path produced the skill_match factor. It is
// observability-only and never affects the numeric score.
type SkillMatchSource string

// Skill match sources.
const (
	SkillMatchAI       SkillMatchSource = "ai"
	SkillMatchFallback SkillMatchSource = "fallback"
)

// Recommendation is one scored opportunity in the ranked result set.
type Recommendation struct {
	OpportunityID    uuid.UUID        `json:"opportunity_id"`
	Title            string           `json:"title"`
	TotalScore       float64          `json:"total_score"`
	MatchReason      string           `json:"match_reason"`
	Breakdown        ScoreBreakdown   `json:"breakdown"`
	StartupCost      string           `json:"startup_cost"`
	EstimatedProfit  string           `json:"estimated_profit"`
	Summary          string           `json:"summary,omitempty"`
	SkillMatchSource SkillMatchSource `json:"skill_match_source"`
}

// CacheEntry is a user's last computed recommendation set. There is at most
// one entry per user; writes replace the whole entry, never merge into it.
type CacheEntry struct {
	UserID          uuid.UUID        `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalAnalyzed   int              `json:"total_analyzed"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
