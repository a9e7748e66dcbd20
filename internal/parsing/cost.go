// Package parsing converts free-form catalog strings into typed values.
package parsing

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Range separators seen in catalog cost strings, checked in order. The
// en/em dashes come first so "$1,000–$3,000" is not split on a minus sign
// inside a malformed number.
var rangeSeparators = []string{"–", "—", " to ", "-"}

// ParseCostRange extracts numeric bounds from a display string such as
// "$100–$500", "$1,000", "Under $100" or "$500+".
//
// Unparsable input never fails: it yields the permissive bounds (0, +Inf)
// with Fallback set, so scoring proceeds and the miss stays observable. An
// empty string means the catalog has no cost data at all and yields (0, 0)
// with Fallback set.
func ParseCostRange(costStr string) types.CostRange {
	s := strings.TrimSpace(costStr)
	if s == "" {
		return types.CostRange{Fallback: true}
	}

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	// "under 100" / "up to 100" bound only the top
	for _, prefix := range []string{"under ", "up to ", "less than "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			if v, ok := parseAmount(rest); ok {
				return types.CostRange{Min: 0, Max: v}
			}
		}
	}

	// "500+" bounds only the bottom
	if rest, ok := strings.CutSuffix(s, "+"); ok {
		if v, ok := parseAmount(rest); ok {
			return types.CostRange{Min: v, Max: math.Inf(1)}
		}
	}

	for _, sep := range rangeSeparators {
		lo, hi, found := strings.Cut(s, sep)
		if !found {
			continue
		}
		minVal, okMin := parseAmount(lo)
		maxVal, okMax := parseAmount(hi)
		if okMin && okMax {
			if maxVal < minVal {
				minVal, maxVal = maxVal, minVal
			}
			return types.CostRange{Min: minVal, Max: maxVal}
		}
	}

	if v, ok := parseAmount(s); ok {
		return types.CostRange{Min: v, Max: v}
	}

	return types.CostRange{Min: 0, Max: math.Inf(1), Fallback: true}
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
