package normalize

import (
	"github.com/addresspin/internal/textsim"
)

// BasicCorrector fixes token spelling with three strategies, cheapest
// first: direct misspelling lookup, dictionary membership (already
// correct), then fuzzy matching against the dictionary.
type BasicCorrector struct {
	// Threshold is the minimum textsim.Ratio score (0-100) for a fuzzy
	// correction. Kept conservative since address text is full of
	// proper nouns that must not be "corrected".
	Threshold int

	dictionary map[string]bool
}

// NewBasicCorrector returns a corrector over the built-in address
// vocabulary with the default threshold of 80.
func NewBasicCorrector() *BasicCorrector {
	dict := make(map[string]bool, len(SpellingDictionary))
	for _, w := range SpellingDictionary {
		dict[w] = true
	}
	return &BasicCorrector{Threshold: 80, dictionary: dict}
}

func (c *BasicCorrector) Correct(word string) (string, bool) {
	if fixed, ok := MisspellingMap[word]; ok {
		return fixed, true
	}
	if c.dictionary[word] {
		return word, false
	}

	best, score := textsim.BestMatch(word, SpellingDictionary)
	if score >= c.Threshold {
		return best, true
	}
	return word, false
}
