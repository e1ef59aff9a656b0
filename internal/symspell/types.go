// Package symspell implements symmetric-delete spelling correction for
// address tokens. Delete variants of every dictionary term are
// pre-computed so lookup cost does not depend on dictionary size,
// which matters when correcting every token of every incoming address.
package symspell

import (
	"os"
	"strconv"
)

// Config holds SymSpell parameters.
type Config struct {
	// MaxEditDistance is the maximum Damerau-Levenshtein distance for a
	// correction. 2 catches most typos without inventing corrections.
	MaxEditDistance int

	// MinTermLength is the minimum token length worth correcting.
	// Short tokens are mostly abbreviations and initials.
	MinTermLength int

	// MinFrequency is the minimum frequency for a term to enter the
	// dictionary.
	MinFrequency int64

	// Enabled controls whether correction runs at all.
	Enabled bool
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() *Config {
	return &Config{
		MaxEditDistance: 2,
		MinTermLength:   3,
		MinFrequency:    1,
		Enabled:         true,
	}
}

// LoadConfigFromEnv reads SYMSPELL_* environment overrides on top of
// the defaults.
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SYMSPELL_ENABLED"); v != "" {
		cfg.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("SYMSPELL_MAX_EDIT_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 3 {
			cfg.MaxEditDistance = n
		}
	}
	if v := os.Getenv("SYMSPELL_MIN_TERM_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinTermLength = n
		}
	}

	return cfg
}

// Suggestion is one spelling correction candidate.
type Suggestion struct {
	// Term is the suggested spelling.
	Term string

	// Distance is the edit distance from the input.
	Distance int

	// Frequency is the term's occurrence count. Among equal distances,
	// higher frequency wins.
	Frequency int64
}

// DictionaryEntry is a term with its frequency, used when building.
type DictionaryEntry struct {
	Term      string
	Frequency int64
}

// DictionaryStats summarizes a built dictionary.
type DictionaryStats struct {
	TermCount      int
	DeleteCount    int
	TotalFrequency int64
	MaxFrequency   int64
}
