package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

const (
	// A factor must score above this to be named in the match reason.
	strongFactorThreshold = 0.8
	maxReasonFactors      = 3
)

// Aggregate combines a complete factor breakdown into the weighted total
// score. With every factor in [0,1] and weights summing to 1, the result is
// in [0,1] by construction.
func Aggregate(breakdown types.ScoreBreakdown) float64 {
	total := 0.0
	for factor, weight := range Weights() {
		total += weight * breakdown[factor]
	}
	return clamp01(total)
}

// MatchReason names the strongest factors, at most three, that score above
// the strong-factor threshold. It returns an empty string when no factor
// clears it.
func MatchReason(breakdown types.ScoreBreakdown) string {
	// Start from the fixed factor order so equal scores always list in the
	// same sequence.
	ordered := make([]string, len(types.FactorNames))
	copy(ordered, types.FactorNames)
	sort.SliceStable(ordered, func(i, j int) bool {
		return breakdown[ordered[i]] > breakdown[ordered[j]]
	})

	var strong []string
	for _, factor := range ordered {
		if breakdown[factor] <= strongFactorThreshold {
			continue
		}
		strong = append(strong, strings.ReplaceAll(factor, "_", " "))
		if len(strong) == maxReasonFactors {
			break
		}
	}

	if len(strong) == 0 {
		return ""
	}
	return "Strong match in: " + strings.Join(strong, ", ")
}

// ScoreOpportunity computes the complete scored recommendation for one
// opportunity, given the skill-match result from the SkillMatcher.
func ScoreOpportunity(p *types.UserProfile, o *types.BusinessOpportunity, skillScore float64, source types.SkillMatchSource) types.Recommendation {
	breakdown := RuleScores(p, o)
	breakdown[types.FactorSkillMatch] = clamp01(skillScore)

	total := Aggregate(breakdown)
	reason := MatchReason(breakdown)

	for factor, score := range breakdown {
		breakdown[factor] = round2(score)
	}

	return types.Recommendation{
		OpportunityID:    o.ID,
		Title:            o.Title,
		TotalScore:       round3(total),
		MatchReason:      reason,
		Breakdown:        breakdown,
		StartupCost:      o.StartupCost,
		EstimatedProfit:  o.EstimatedProfit,
		Summary:          o.Summary,
		SkillMatchSource: source,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
