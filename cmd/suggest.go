package cmd

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestLabel returns the candidate nearest to name by edit distance, for
// "did you mean" hints on label typos. Matching is case-insensitive; names
// further than half their length away are not suggested.
func closestLabel(name string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if best == "" || bestDist > len(name)/2 {
		return "", false
	}
	return best, true
}

// suggestLabel formats the hint appended to unknown-label errors.
func suggestLabel(name string, candidates []string) string {
	if hint, ok := closestLabel(name, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return ""
}
