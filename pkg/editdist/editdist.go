// Package editdist implements bounded edit distance and nearest-neighbor
// lookup against a word set. It is the slowest check the spell checker has,
// so callers only reach for it after every faster lookup has failed.
package editdist

import (
	"strings"

	"github.com/campuslink/textguard/pkg/dict"
)

// lenDiffLimit prunes candidates whose length differs from the query by
// more than this before any distance is computed.
const lenDiffLimit = 2

// Distance returns the edit distance between a and b: the minimum number of
// unit-cost insertions, deletions, substitutions and adjacent transpositions
// (optimal string alignment). Counting a swap as one edit matters for typo
// correction: "wierd" must sit at distance 1 from "weird", not 2, or a
// shorter unrelated word can win the nearest-neighbor tie.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev2 := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if d := prev2[j-2] + 1; d < curr[j] { // transposition
					curr[j] = d
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[len(rb)]
}

// Threshold returns the acceptance bound for a query of the given rune
// length. Short words keep a tighter bound: small distances already cover
// a large fraction of all short words.
func Threshold(queryLen int) int {
	if queryLen <= 4 {
		return 2
	}
	return 3
}

// Nearest returns the first candidate in the set's stable iteration order
// whose distance to word is minimal and within maxDist. The boolean is
// false when no candidate qualifies.
func Nearest(word string, set *dict.WordSet, maxDist int) (string, int, bool) {
	if word == "" || set == nil || maxDist < 0 {
		return "", 0, false
	}
	query := strings.ToLower(word)
	queryLen := len([]rune(query))

	best := ""
	bestDist := maxDist + 1
	for _, cand := range set.Words() {
		diff := len([]rune(cand)) - queryLen
		if diff < -lenDiffLimit || diff > lenDiffLimit {
			continue
		}
		if d := Distance(query, cand); d < bestDist {
			best = cand
			bestDist = d
			if d == 0 {
				break
			}
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestDist, true
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
