package symspell

import (
	"sort"
	"strings"
)

// SymSpell holds the term dictionary and its delete-variant index.
type SymSpell struct {
	dictionary map[string]int64
	deletes    map[string][]string
	config     *Config
}

// New creates an empty SymSpell instance.
func New(config *Config) *SymSpell {
	if config == nil {
		config = DefaultConfig()
	}
	return &SymSpell{
		dictionary: make(map[string]int64),
		deletes:    make(map[string][]string),
		config:     config,
	}
}

// AddTerm indexes a term and all its delete variants. Terms shorter
// than MinTermLength are ignored.
func (s *SymSpell) AddTerm(term string, frequency int64) {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < s.config.MinTermLength {
		return
	}

	s.dictionary[term] += frequency

	for _, del := range s.generateDeletes(term, s.config.MaxEditDistance) {
		s.deletes[del] = append(s.deletes[del], term)
	}
}

// AddTerms indexes a batch of entries.
func (s *SymSpell) AddTerms(entries []DictionaryEntry) {
	for _, entry := range entries {
		s.AddTerm(entry.Term, entry.Frequency)
	}
}

// Contains reports whether the term exists exactly in the dictionary.
func (s *SymSpell) Contains(term string) bool {
	_, ok := s.dictionary[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Lookup returns suggestions for the input term, sorted by edit
// distance ascending then frequency descending.
func (s *SymSpell) Lookup(input string, maxDistance int) []Suggestion {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	if maxDistance > s.config.MaxEditDistance {
		maxDistance = s.config.MaxEditDistance
	}

	if freq, ok := s.dictionary[input]; ok {
		return []Suggestion{{Term: input, Distance: 0, Frequency: freq}}
	}

	seen := make(map[string]bool)
	var candidates []Suggestion

	consider := func(term string) {
		if seen[term] {
			return
		}
		seen[term] = true
		dist := s.editDistance(input, term, maxDistance)
		if dist >= 0 && dist <= maxDistance {
			candidates = append(candidates, Suggestion{
				Term:      term,
				Distance:  dist,
				Frequency: s.dictionary[term],
			})
		}
	}

	// The input's deletes meet the dictionary's deletes in the middle:
	// any term within maxDistance shares at least one variant.
	inputDeletes := append(s.generateDeletes(input, maxDistance), input)
	for _, del := range inputDeletes {
		for _, term := range s.deletes[del] {
			consider(term)
		}
		if _, ok := s.dictionary[del]; ok {
			consider(del)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Frequency > candidates[j].Frequency
	})

	return candidates
}

// LookupBest returns the single best suggestion, or nil.
func (s *SymSpell) LookupBest(input string, maxDistance int) *Suggestion {
	suggestions := s.Lookup(input, maxDistance)
	if len(suggestions) == 0 {
		return nil
	}
	return &suggestions[0]
}

// Stats returns dictionary statistics.
func (s *SymSpell) Stats() DictionaryStats {
	stats := DictionaryStats{
		TermCount:   len(s.dictionary),
		DeleteCount: len(s.deletes),
	}
	for _, freq := range s.dictionary {
		stats.TotalFrequency += freq
		if freq > stats.MaxFrequency {
			stats.MaxFrequency = freq
		}
	}
	return stats
}

func (s *SymSpell) generateDeletes(term string, maxDistance int) []string {
	if maxDistance <= 0 || term == "" {
		return nil
	}

	deletes := make(map[string]bool)
	s.generateDeletesRecursive(term, maxDistance, deletes)

	result := make([]string, 0, len(deletes))
	for del := range deletes {
		result = append(result, del)
	}
	return result
}

func (s *SymSpell) generateDeletesRecursive(term string, distance int, deletes map[string]bool) {
	if distance <= 0 || len(term) <= 1 {
		return
	}
	for i := 0; i < len(term); i++ {
		del := term[:i] + term[i+1:]
		if !deletes[del] {
			deletes[del] = true
			s.generateDeletesRecursive(del, distance-1, deletes)
		}
	}
}

// editDistance computes the Damerau-Levenshtein distance, returning -1
// as soon as it provably exceeds maxDistance.
func (s *SymSpell) editDistance(a, b string, maxDistance int) int {
	lenA, lenB := len(a), len(b)

	if abs(lenA-lenB) > maxDistance {
		return -1
	}
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	if lenA > lenB {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	prevPrev := make([]int, lenA+1)

	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		minDist := j

		for i := 1; i <= lenA; i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,
				curr[i-1]+1,
				prev[i-1]+cost,
			)

			// transposition
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[i] = min2(curr[i], prevPrev[i-2]+cost)
			}

			if curr[i] < minDist {
				minDist = curr[i]
			}
		}

		if minDist > maxDistance {
			return -1
		}

		prevPrev, prev, curr = prev, curr, prevPrev
	}

	if prev[lenA] > maxDistance {
		return -1
	}
	return prev[lenA]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}
