package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func recWith(id string, score float64) types.Recommendation {
	return types.Recommendation{
		OpportunityID: uuid.MustParse(id),
		TotalScore:    score,
	}
}

func TestRank(t *testing.T) {
	recs := []types.Recommendation{
		recWith("00000000-0000-0000-0000-000000000001", 0.4),
		recWith("00000000-0000-0000-0000-000000000002", 0.9),
		recWith("00000000-0000-0000-0000-000000000003", 0.2),
		recWith("00000000-0000-0000-0000-000000000004", 0.7),
	}

	ranked := Rank(recs, 0.3, 10)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 0.9, ranked[0].TotalScore)
	assert.Equal(t, 0.7, ranked[1].TotalScore)
	assert.Equal(t, 0.4, ranked[2].TotalScore)
}

func TestRankThresholdInclusive(t *testing.T) {
	recs := []types.Recommendation{
		recWith("00000000-0000-0000-0000-000000000001", 0.3),
	}
	assert.Len(t, Rank(recs, 0.3, 10), 1)
}

func TestRankLimit(t *testing.T) {
	recs := []types.Recommendation{
		recWith("00000000-0000-0000-0000-000000000001", 0.5),
		recWith("00000000-0000-0000-0000-000000000002", 0.6),
		recWith("00000000-0000-0000-0000-000000000003", 0.7),
	}

	ranked := Rank(recs, 0, 2)
	assert.Len(t, ranked, 2)
	assert.Equal(t, 0.7, ranked[0].TotalScore)
	assert.Equal(t, 0.6, ranked[1].TotalScore)
}

func TestRankTieBreakByID(t *testing.T) {
	recs := []types.Recommendation{
		recWith("00000000-0000-0000-0000-00000000000b", 0.5),
		recWith("00000000-0000-0000-0000-00000000000a", 0.5),
		recWith("00000000-0000-0000-0000-00000000000c", 0.5),
	}

	ranked := Rank(recs, 0, 10)
	assert.Equal(t, "00000000-0000-0000-0000-00000000000a", ranked[0].OpportunityID.String())
	assert.Equal(t, "00000000-0000-0000-0000-00000000000b", ranked[1].OpportunityID.String())
	assert.Equal(t, "00000000-0000-0000-0000-00000000000c", ranked[2].OpportunityID.String())
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 0.3, 10))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	recs := []types.Recommendation{
		recWith("00000000-0000-0000-0000-000000000001", 0.2),
		recWith("00000000-0000-0000-0000-000000000002", 0.9),
	}

	_ = Rank(recs, 0, 10)

	assert.Equal(t, 0.2, recs[0].TotalScore)
	assert.Equal(t, 0.9, recs[1].TotalScore)
}
