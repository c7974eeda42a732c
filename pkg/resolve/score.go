package resolve

import "github.com/hbollon/go-edlib"

// Ratio scores how closely two strings match, from 0 (disjoint) to 100
// (identical), as a normalized Levenshtein ratio:
//
//	100 * (maxLen - distance) / maxLen
//
// The scorer is deliberately dumb about case: it compares exactly what it is
// given, and callers normalize beforehand. For a fixed query the ratio gives
// a deterministic total order over any candidate set, which the resolver
// relies on; swapping the algorithm would change observable match winners.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}
	dist := edlib.LevenshteinDistance(a, b)
	if dist > maxLen {
		dist = maxLen
	}
	return (maxLen - dist) * 100 / maxLen
}
