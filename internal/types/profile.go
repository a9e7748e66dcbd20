// Package types provides type definitions for structured data used throughout the opportunity-matcher system.
package types

import (
	"github.com/google/uuid"
)

// QuizResponses is the raw quiz payload as persisted for a user. The quiz UI
// is free to omit any field, so everything here is optional; pointer fields
// distinguish "absent" from a legitimate zero value.
type QuizResponses struct {
	Background       string   `json:"background"`
	Skills           []string `json:"skills"`
	WillingToLearn   string   `json:"willing_to_learn"`
	WeeklyHours      *int     `json:"weekly_hours"`
	WorkSchedule     string   `json:"work_schedule"`
	EarningUrgency   string   `json:"earning_urgency"`
	TaskPreference   string   `json:"task_preference"`
	Avoidances       []string `json:"avoidances"`
	InvestmentBudget *float64 `json:"investment_budget"`
	RiskTolerance    string   `json:"risk_tolerance"`
	TechComfort      string   `json:"tech_comfort"`
}

// UserProfile is the canonical, fully-defaulted form of a user's quiz
// responses. It is immutable for the duration of a scoring pass.
type UserProfile struct {
	UserID         uuid.UUID `json:"user_id"`
	Background     string    `json:"background"`
	Skills         []string  `json:"skills"`
	WillingToLearn string    `json:"willing_to_learn"` // yes, no, possible
	WeeklyHours    int       `json:"weekly_hours"`     // ordinal 0..3, see HoursForOrdinal
	WorkSchedule   string    `json:"work_schedule"`
	EarningUrgency string    `json:"earning_urgency"`
	TaskPreference string    `json:"task_preference"`
	Avoidances     []string  `json:"avoidances"`
	Budget         float64   `json:"investment_budget"`
	RiskTolerance  int       `json:"risk_tolerance"` // ordinal, see RiskOrdinal
	TechComfort    int       `json:"tech_comfort"`   // ordinal, see TechOrdinal
}

// HoursForOrdinal maps the weekly-hours quiz ordinal to hours per week.
func HoursForOrdinal(ordinal int) int {
	switch ordinal {
	case 0:
		return 5
	case 1:
		return 10
	case 2:
		return 20
	case 3:
		return 30
	default:
		return 10
	}
}

// RiskOrdinal maps a risk tag to its position on the tolerance scale.
// Unknown tags resolve to moderate.
func RiskOrdinal(tag string) int {
	switch tag {
	case "very_low":
		return 0
	case "low":
		return 1
	case "moderate":
		return 2
	case "high":
		return 3
	case "very_high":
		return 4
	default:
		return 2
	}
}

// TechOrdinal maps a tech-comfort or tech-requirement tag to its position on
// the comfort scale. Unknown tags resolve to moderate.
func TechOrdinal(tag string) int {
	switch tag {
	case "none":
		return 0
	case "minimal":
		return 1
	case "moderate":
		return 2
	case "very":
		return 3
	default:
		return 2
	}
}
