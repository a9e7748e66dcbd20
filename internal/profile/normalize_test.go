package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func TestNormalizeFullPayload(t *testing.T) {
	userID := uuid.New()
	raw := []byte(`{
		"background": "Ran a small bakery for five years",
		"skills": ["baking", "customer service"],
		"willing_to_learn": "yes",
		"weekly_hours": 2,
		"work_schedule": "weekends",
		"earning_urgency": "soon",
		"task_preference": "hands_on",
		"avoidances": ["driving"],
		"investment_budget": 1500,
		"risk_tolerance": "low",
		"tech_comfort": "minimal"
	}`)

	p := Normalize(userID, raw)

	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, "Ran a small bakery for five years", p.Background)
	assert.Equal(t, []string{"baking", "customer service"}, p.Skills)
	assert.Equal(t, "yes", p.WillingToLearn)
	assert.Equal(t, 2, p.WeeklyHours)
	assert.Equal(t, "weekends", p.WorkSchedule)
	assert.Equal(t, "hands_on", p.TaskPreference)
	assert.Equal(t, []string{"driving"}, p.Avoidances)
	assert.Equal(t, 1500.0, p.Budget)
	assert.Equal(t, 1, p.RiskTolerance)
	assert.Equal(t, 1, p.TechComfort)
}

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"Nil payload", nil},
		{"Empty object", []byte(`{}`)},
		{"Malformed JSON", []byte(`{"skills": [`)},
		{"Wrong types", []byte(`{"weekly_hours": "lots"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(uuid.Nil, tt.raw)
			require.NotNil(t, p)
			assert.Equal(t, DefaultWillingToLearn, p.WillingToLearn)
			assert.Equal(t, DefaultWeeklyHours, p.WeeklyHours)
			assert.Equal(t, DefaultWorkSchedule, p.WorkSchedule)
			assert.Equal(t, DefaultTaskPreference, p.TaskPreference)
			assert.Equal(t, 0.0, p.Budget)
			assert.Equal(t, types.RiskOrdinal(DefaultRiskTolerance), p.RiskTolerance)
			assert.Equal(t, types.TechOrdinal(DefaultTechComfort), p.TechComfort)
		})
	}
}

func TestNormalizeClampsOrdinals(t *testing.T) {
	p := Normalize(uuid.Nil, []byte(`{"weekly_hours": 99}`))
	assert.Equal(t, 3, p.WeeklyHours)

	p = Normalize(uuid.Nil, []byte(`{"weekly_hours": -2}`))
	assert.Equal(t, 0, p.WeeklyHours)
}

func TestNormalizeIgnoresNegativeBudget(t *testing.T) {
	p := Normalize(uuid.Nil, []byte(`{"investment_budget": -100}`))
	assert.Equal(t, 0.0, p.Budget)
}

func TestNormalizeUnknownOrdinalTags(t *testing.T) {
	p := Normalize(uuid.Nil, []byte(`{"risk_tolerance": "yolo", "tech_comfort": "wizard"}`))
	assert.Equal(t, 2, p.RiskTolerance)
	assert.Equal(t, 2, p.TechComfort)
}

func TestCheckSchema(t *testing.T) {
	assert.NoError(t, CheckSchema([]byte(`{"background": "chef", "weekly_hours": 1}`)))
	assert.Error(t, CheckSchema([]byte(`{"weekly_hours": "lots"}`)))
	assert.NoError(t, CheckSchema(nil))
}
