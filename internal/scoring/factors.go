package scoring

import (
	"math"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Neutral scores used when the catalog carries no usable data for a factor.
// Missing cost data scores 0.8 (most opportunities without a listed cost are
// cheap to start); every other ambiguity resolves to 0.5.
const (
	neutralNoCostData = 0.8
	neutralScore      = 0.5
)

// Required hours assumed when the catalog does not state them.
const defaultRequiredHours = 15

// Graded penalty per ordinal step the opportunity sits above the user's
// tolerance or comfort level.
const ordinalStepPenalty = 0.3

// RuleScores computes the six deterministic rule-based factors. The seventh
// factor, skill_match, is filled in by the SkillMatcher.
func RuleScores(p *types.UserProfile, o *types.BusinessOpportunity) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		types.FactorStartupCost:    scoreStartupCost(p, o),
		types.FactorTimeCommitment: scoreTimeCommitment(p, o),
		types.FactorScheduleFit:    scoreScheduleFit(p, o),
		types.FactorRiskTolerance:  scoreRiskTolerance(p, o),
		types.FactorTechComfort:    scoreTechComfort(p, o),
		types.FactorTaskPreference: scoreTaskPreference(p, o),
	}
}

// scoreStartupCost scores affordability as budget relative to the top of the
// cost range: 1.0 at or above cost-max, falling linearly to 0 at zero budget.
func scoreStartupCost(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	cr := o.CostRange
	if cr.Fallback || math.IsInf(cr.Max, 1) {
		return neutralNoCostData
	}
	if cr.Max <= 0 {
		// Free to start
		return 1.0
	}
	return clamp01(p.Budget / cr.Max)
}

// scoreTimeCommitment scores available hours against required hours: 1.0
// when the user has enough, linear decay proportional to the shortfall.
func scoreTimeCommitment(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	required := o.HoursPerWeek
	if required <= 0 {
		required = defaultRequiredHours
	}
	available := types.HoursForOrdinal(p.WeeklyHours)
	if available >= required {
		return 1.0
	}
	return clamp01(float64(available) / float64(required))
}

// Schedule tags grouped by rough time-of-day compatibility. A user whose
// schedule lands in the same group as an opportunity's counts as a partial
// fit.
var scheduleGroups = map[string]string{
	"weekdays": "daytime",
	"early":    "daytime",
	"evenings": "offhours",
	"weekends": "offhours",
	"nights":   "offhours",
}

// scoreScheduleFit scores 1.0 for an exact tag match or "flexible" on either
// side, 0.5 for a partial (same-group) overlap, 0 otherwise.
func scoreScheduleFit(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	if p.WorkSchedule == "flexible" {
		return 1.0
	}
	if len(o.Schedules) == 0 {
		return neutralScore
	}

	userGroup := scheduleGroups[p.WorkSchedule]
	partial := false
	for _, tag := range o.Schedules {
		if tag == "flexible" || tag == p.WorkSchedule {
			return 1.0
		}
		if userGroup != "" && scheduleGroups[tag] == userGroup {
			partial = true
		}
	}
	if partial {
		return 0.5
	}
	return 0.0
}

// scoreRiskTolerance scores 1.0 when the opportunity's risk sits at or below
// the user's tolerance, with a graded penalty per ordinal step above it.
func scoreRiskTolerance(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	over := o.RiskLevel - p.RiskTolerance
	if over <= 0 {
		return 1.0
	}
	return clamp01(1.0 - ordinalStepPenalty*float64(over))
}

// scoreTechComfort scores 1.0 when the user's tech comfort meets the
// opportunity's requirement, with a graded penalty per ordinal step short.
func scoreTechComfort(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	over := o.TechLevel - p.TechComfort
	if over <= 0 {
		return 1.0
	}
	return clamp01(1.0 - ordinalStepPenalty*float64(over))
}

// scoreTaskPreference scores 1.0 for an exact task-type match or a "mixed"
// preference, 0 otherwise.
func scoreTaskPreference(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	if p.TaskPreference == "mixed" {
		return 1.0
	}
	if o.TaskType == "" {
		return neutralScore
	}
	if o.TaskType == p.TaskPreference {
		return 1.0
	}
	return 0.0
}
