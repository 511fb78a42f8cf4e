// Package fuzzy provides edit-distance based string similarity used for
// tolerant skill matching.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchThreshold is the similarity ratio (0-100) above which two skill
// strings are treated as equivalent. Reimplementations must keep this
// value for score comparability.
const MatchThreshold = 80

// Ratio returns a normalized similarity ratio between a and b on a 0-100
// scale: 100 * (1 - levenshtein(a, b) / max(len(a), len(b))).
// Comparison is case-insensitive and ignores surrounding whitespace.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	distance := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	return 100 * (1 - float64(distance)/float64(longest))
}

// Match reports whether a and b clear MatchThreshold.
func Match(a, b string) bool {
	return Ratio(a, b) > MatchThreshold
}
