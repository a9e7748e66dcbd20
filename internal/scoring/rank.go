package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Rank filters candidates below minScore, orders the remainder by total
// score descending with ties broken by opportunity ID, and truncates to
// limit. The ID tie-break keeps the ordering deterministic across passes.
func Rank(recs []types.Recommendation, minScore float64, limit int) []types.Recommendation {
	ranked := make([]types.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.TotalScore >= minScore {
			ranked = append(ranked, r)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return strings.Compare(ranked[i].OpportunityID.String(), ranked[j].OpportunityID.String()) < 0
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
