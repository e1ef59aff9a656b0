// Package match resolves extracted landmark mentions against the
// gazetteer. Candidates are scored with hashed n-gram embeddings and a
// token-sort fuzzy fallback, so "shiva mandir" still finds the entry
// named "Shiv Mandir".
package match

import (
	"sort"
	"strings"
	"sync"

	"github.com/addresspin/internal/gazetteer"
	"github.com/addresspin/internal/textsim"
)

// DefaultThreshold is the minimum similarity for a match to count.
const DefaultThreshold = 0.5

// Result is one gazetteer entry matched to an input mention.
type Result struct {
	Input       string  `json:"input"`
	MatchedName string  `json:"matched_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Similarity  float64 `json:"similarity"`
	Category    string  `json:"category"`
	City        string  `json:"city"`
	Pincode     string  `json:"pincode,omitempty"`
}

// Matcher scores mentions against gazetteer snapshots. Candidate
// vectors are computed once per snapshot and reused until the
// gazetteer reloads.
type Matcher struct {
	store     *gazetteer.Store
	embedder  *Embedder
	threshold float64

	mu       sync.Mutex
	snapshot *gazetteer.Snapshot
	vectors  map[string][]float32
}

// NewMatcher creates a matcher over the given store.
func NewMatcher(store *gazetteer.Store) *Matcher {
	return &Matcher{
		store:     store,
		embedder:  NewEmbedder(DefaultDimensions),
		threshold: DefaultThreshold,
	}
}

// SetThreshold overrides the minimum similarity. Values outside (0, 1]
// are ignored.
func (m *Matcher) SetThreshold(threshold float64) {
	if threshold > 0 && threshold <= 1 {
		m.threshold = threshold
	}
}

// Match returns up to topK gazetteer entries for the mention, best
// first. City scopes the candidate set; an unknown or empty city means
// all entries are considered.
func (m *Matcher) Match(mention, city string, topK int) []Result {
	mention = strings.ToLower(strings.TrimSpace(mention))
	if mention == "" {
		return nil
	}
	if topK <= 0 {
		topK = 1
	}

	snapshot := m.store.Snapshot()
	vectors := m.vectorsFor(snapshot)
	queryVec := m.embedder.Embed(mention)

	var results []Result
	for _, lm := range snapshot.ByCity(city) {
		best := 0.0
		for _, name := range lm.Names() {
			key := strings.ToLower(name)
			score := Cosine(queryVec, vectors[key])
			if fuzzy := float64(textsim.TokenSortRatio(mention, key)) / 100.0; fuzzy > score {
				score = fuzzy
			}
			if score > best {
				best = score
			}
		}
		if best < m.threshold {
			continue
		}
		results = append(results, Result{
			Input:       mention,
			MatchedName: lm.Name,
			Lat:         lm.Lat,
			Lng:         lm.Lng,
			Similarity:  best,
			Category:    lm.Category,
			City:        lm.City,
			Pincode:     lm.Pincode,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Vocabulary returns the known landmark names and aliases of the
// current gazetteer snapshot.
func (m *Matcher) Vocabulary() []string {
	return m.store.Snapshot().Vocabulary()
}

// Best returns the single best match, or nil when nothing clears the
// threshold.
func (m *Matcher) Best(mention, city string) *Result {
	results := m.Match(mention, city, 1)
	if len(results) == 0 {
		return nil
	}
	return &results[0]
}

// MatchAll resolves a batch of mentions, keeping only those that
// matched.
func (m *Matcher) MatchAll(mentions []string, city string) []Result {
	var results []Result
	for _, mention := range mentions {
		if best := m.Best(mention, city); best != nil {
			results = append(results, *best)
		}
	}
	return results
}

// vectorsFor returns the candidate vectors for the snapshot,
// rebuilding the cache when the gazetteer has reloaded since the last
// call.
func (m *Matcher) vectorsFor(snapshot *gazetteer.Snapshot) map[string][]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if snapshot == m.snapshot {
		return m.vectors
	}

	vectors := make(map[string][]float32)
	for i := range snapshot.Landmarks {
		for _, name := range snapshot.Landmarks[i].Names() {
			key := strings.ToLower(name)
			if _, ok := vectors[key]; !ok {
				vectors[key] = m.embedder.Embed(key)
			}
		}
	}

	m.snapshot = snapshot
	m.vectors = vectors
	return vectors
}
