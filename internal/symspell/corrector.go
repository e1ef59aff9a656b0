package symspell

import (
	"regexp"
	"strings"
	"sync"
)

// Corrector wraps SymSpell with the token-level skip rules used in the
// address pipeline. It satisfies the normalize.Corrector interface.
type Corrector struct {
	symspell *SymSpell
	config   *Config
	mu       sync.RWMutex
}

// NewCorrector builds a corrector from pre-built dictionary entries.
func NewCorrector(entries []DictionaryEntry, config *Config) *Corrector {
	if config == nil {
		config = DefaultConfig()
	}
	ss := New(config)
	ss.AddTerms(entries)
	return &Corrector{symspell: ss, config: config}
}

// NewCorrectorFromVocabulary builds a corrector from plain word lists.
// Multi-word entries are split so "shiv mandir" indexes both tokens.
// Later lists repeat-add shared tokens, raising their frequency, which
// biases ties toward common address vocabulary.
func NewCorrectorFromVocabulary(config *Config, vocabularies ...[]string) *Corrector {
	if config == nil {
		config = DefaultConfig()
	}

	ss := New(config)
	for _, vocab := range vocabularies {
		for _, entry := range vocab {
			for _, token := range strings.Fields(strings.ToLower(entry)) {
				ss.AddTerm(token, 1)
			}
		}
	}

	return &Corrector{symspell: ss, config: config}
}

var digitToken = regexp.MustCompile(`\d`)

// Correct returns the corrected spelling of one token. ok is false
// when the token is skipped, already correct, or has no close
// dictionary match.
func (c *Corrector) Correct(word string) (string, bool) {
	if c == nil || c.symspell == nil {
		return word, false
	}

	token := strings.ToLower(strings.TrimSpace(word))
	if len(token) < c.config.MinTermLength || digitToken.MatchString(token) {
		return word, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	suggestion := c.symspell.LookupBest(token, c.config.MaxEditDistance)
	if suggestion == nil || suggestion.Distance == 0 {
		return word, false
	}
	return suggestion.Term, true
}

// Rebuild swaps in a fresh dictionary built from the given entries,
// used after a gazetteer reload.
func (c *Corrector) Rebuild(entries []DictionaryEntry) {
	ss := New(c.config)
	ss.AddTerms(entries)

	c.mu.Lock()
	c.symspell = ss
	c.mu.Unlock()
}

// Suggestions exposes raw lookup results for diagnostics.
func (c *Corrector) Suggestions(token string, maxResults int) []Suggestion {
	if c == nil || c.symspell == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	suggestions := c.symspell.Lookup(token, c.config.MaxEditDistance)
	if maxResults > 0 && len(suggestions) > maxResults {
		return suggestions[:maxResults]
	}
	return suggestions
}

// Stats returns the underlying dictionary statistics.
func (c *Corrector) Stats() DictionaryStats {
	if c == nil || c.symspell == nil {
		return DictionaryStats{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.symspell.Stats()
}
