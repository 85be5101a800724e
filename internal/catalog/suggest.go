package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name by edit distance, if it is
// close enough to be a plausible typo.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}

	lowered := strings.ToLower(name)
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist < 0 {
		return "", false
	}

	limit := len(name) / SuggestionLengthDivisor
	if limit < MinSuggestionDistance {
		limit = MinSuggestionDistance
	}
	if bestDist > limit {
		return "", false
	}
	return best, true
}
