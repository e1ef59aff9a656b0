// Package textsim implements the string similarity measures used for
// fuzzy landmark matching: Levenshtein distance, a 0-100 ratio, and a
// token-sort variant that ignores word order.
package textsim

import (
	"sort"
	"strings"
)

// Levenshtein returns the edit distance between two strings, computed
// over runes with a two-row dynamic program.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Ratio returns a similarity score in [0,100] based on edit distance
// over the combined length of both strings.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}

	dist := Levenshtein(a, b)
	score := 100 * (total - 2*dist) / total
	if score < 0 {
		score = 0
	}
	return score
}

// TokenSortRatio sorts the whitespace tokens of both strings before
// comparing, so "mandir shiv" and "shiv mandir" score as identical.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// BestMatch returns the candidate with the highest TokenSortRatio
// against the query, along with its score. Returns ("", 0) when the
// candidate list is empty.
func BestMatch(query string, candidates []string) (string, int) {
	best := ""
	bestScore := 0

	for _, c := range candidates {
		score := TokenSortRatio(query, c)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best, bestScore
}

func sortTokens(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
