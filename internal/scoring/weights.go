// Package scoring implements the multi-factor recommendation scoring engine:
// the avoidance gate, the seven factor scorers, the AI-assisted skill matcher
// with its deterministic fallback, aggregation and ranking.
package scoring

import (
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Factor weights. These sum to exactly 1.0, which keeps every total score
// inside [0,1]; WeightsSumToOne in the tests guards the invariant.
const (
	weightStartupCost    = 0.25
	weightTimeCommitment = 0.20
	weightSkillMatch     = 0.20
	weightScheduleFit    = 0.10
	weightRiskTolerance  = 0.10
	weightTechComfort    = 0.08
	weightTaskPreference = 0.07
)

// Weights returns the factor weight table keyed by factor name.
func Weights() map[string]float64 {
	return map[string]float64{
		types.FactorStartupCost:    weightStartupCost,
		types.FactorTimeCommitment: weightTimeCommitment,
		types.FactorSkillMatch:     weightSkillMatch,
		types.FactorScheduleFit:    weightScheduleFit,
		types.FactorRiskTolerance:  weightRiskTolerance,
		types.FactorTechComfort:    weightTechComfort,
		types.FactorTaskPreference: weightTaskPreference,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
