package types

import (
	"github.com/google/uuid"
)

// CostRange holds the numeric bounds parsed from a display string such as
// "$100–$500". Fallback is set when the string carried no usable number and
// the bounds are the permissive defaults.
type CostRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Fallback bool    `json:"-"`
}

// BusinessOpportunity is one catalog entry, read-only during a scoring pass.
// Only published opportunities reach the engine; filtering on the published
// flag happens in the store query.
type BusinessOpportunity struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary,omitempty"`
	StartupCost     string    `json:"startup_cost"`               // display string
	EstimatedProfit string    `json:"estimated_monthly_profit"`   // display string
	CostRange       CostRange `json:"-"`                          // parsed from StartupCost
	HoursPerWeek    int       `json:"hours_per_week"`             // required weekly hours
	Schedules       []string  `json:"schedules"`
	RiskLevel       int       `json:"risk_level"`                 // ordinal, see RiskOrdinal
	TechLevel       int       `json:"tech_level"`                 // ordinal, see TechOrdinal
	TaskType        string    `json:"task_type"`
	HazardTags      []string  `json:"hazard_tags"`
	RequiredSkills  []string  `json:"required_skills"`
	Published       bool      `json:"published"`
}
