// Package profile converts raw quiz payloads into canonical user profiles.
//
// Partial quiz data is expected: every field except the identifying key
// degrades to a documented default instead of failing the scoring pass.
package profile

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Defaults applied to absent quiz fields.
const (
	DefaultWillingToLearn = "possible"
	DefaultWeeklyHours    = 1 // 10 hours/week
	DefaultWorkSchedule   = "flexible"
	DefaultRiskTolerance  = "moderate"
	DefaultTechComfort    = "moderate"
	DefaultTaskPreference = "mixed"
)

// Normalize converts a raw quiz payload into a fully-defaulted UserProfile.
// A nil, empty or malformed payload yields a profile built entirely from
// defaults; the payload itself never fails normalization.
func Normalize(userID uuid.UUID, raw []byte) *types.UserProfile {
	var qr types.QuizResponses
	if len(raw) > 0 {
		// Malformed JSON degrades to the zero value, same as an empty quiz.
		_ = json.Unmarshal(raw, &qr)
	}
	return FromResponses(userID, &qr)
}

// FromResponses builds a UserProfile from an already-decoded quiz payload.
func FromResponses(userID uuid.UUID, qr *types.QuizResponses) *types.UserProfile {
	p := &types.UserProfile{
		UserID:         userID,
		Background:     qr.Background,
		Skills:         qr.Skills,
		WillingToLearn: qr.WillingToLearn,
		WeeklyHours:    DefaultWeeklyHours,
		WorkSchedule:   qr.WorkSchedule,
		EarningUrgency: qr.EarningUrgency,
		TaskPreference: qr.TaskPreference,
		Avoidances:     qr.Avoidances,
		RiskTolerance:  types.RiskOrdinal(DefaultRiskTolerance),
		TechComfort:    types.TechOrdinal(DefaultTechComfort),
	}

	if qr.WillingToLearn == "" {
		p.WillingToLearn = DefaultWillingToLearn
	}
	if qr.WeeklyHours != nil {
		p.WeeklyHours = clampOrdinal(*qr.WeeklyHours, 3)
	}
	if qr.WorkSchedule == "" {
		p.WorkSchedule = DefaultWorkSchedule
	}
	if qr.TaskPreference == "" {
		p.TaskPreference = DefaultTaskPreference
	}
	if qr.InvestmentBudget != nil && *qr.InvestmentBudget > 0 {
		p.Budget = *qr.InvestmentBudget
	}
	if qr.RiskTolerance != "" {
		p.RiskTolerance = types.RiskOrdinal(qr.RiskTolerance)
	}
	if qr.TechComfort != "" {
		p.TechComfort = types.TechOrdinal(qr.TechComfort)
	}

	return p
}

func clampOrdinal(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
