package scoring

import (
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// FilterAvoidances removes opportunities whose hazard tags intersect the
// user's avoidance set. This is a hard gate: an excluded opportunity never
// reaches scoring, regardless of how well it would score. An empty avoidance
// set, or one containing only "none", excludes nothing.
func FilterAvoidances(p *types.UserProfile, opps []types.BusinessOpportunity) []types.BusinessOpportunity {
	avoid := avoidanceSet(p.Avoidances)
	if len(avoid) == 0 {
		return opps
	}

	eligible := make([]types.BusinessOpportunity, 0, len(opps))
	for _, o := range opps {
		if !hasHazardConflict(avoid, o.HazardTags) {
			eligible = append(eligible, o)
		}
	}
	return eligible
}

// avoidanceSet normalizes the user's avoidance tags into a lookup set,
// dropping "none" and blanks.
func avoidanceSet(avoidances []string) map[string]bool {
	set := make(map[string]bool, len(avoidances))
	for _, tag := range avoidances {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "none" {
			continue
		}
		set[tag] = true
	}
	return set
}

func hasHazardConflict(avoid map[string]bool, hazards []string) bool {
	for _, tag := range hazards {
		if avoid[strings.ToLower(strings.TrimSpace(tag))] {
			return true
		}
	}
	return false
}
