// Package gazetteer holds the landmark reference data the matcher and
// predictor work against. The data can come from the built-in seed set,
// CSV or JSON files on disk, or a PostgreSQL table, and is served
// through an atomically swapped snapshot so readers never block a
// reload.
package gazetteer

import (
	"sort"
	"strings"
)

// Landmark is one known place with a verified coordinate.
type Landmark struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Category string   `json:"category"`
	City     string   `json:"city"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Pincode  string   `json:"pincode,omitempty"`
}

// Names returns the canonical name plus all aliases.
func (l *Landmark) Names() []string {
	out := make([]string, 0, 1+len(l.Aliases))
	out = append(out, l.Name)
	out = append(out, l.Aliases...)
	return out
}

// Snapshot is an immutable view of the gazetteer. All lookup structures
// are built once at load time; a Snapshot is never mutated after
// publication.
type Snapshot struct {
	Landmarks []Landmark

	byCity     map[string][]*Landmark
	vocabulary []string
}

func newSnapshot(landmarks []Landmark) *Snapshot {
	s := &Snapshot{
		Landmarks: landmarks,
		byCity:    make(map[string][]*Landmark),
	}

	seen := make(map[string]bool)
	for i := range s.Landmarks {
		lm := &s.Landmarks[i]
		city := strings.ToLower(strings.TrimSpace(lm.City))
		s.byCity[city] = append(s.byCity[city], lm)

		for _, name := range lm.Names() {
			key := strings.ToLower(strings.TrimSpace(name))
			if key != "" && !seen[key] {
				seen[key] = true
				s.vocabulary = append(s.vocabulary, key)
			}
		}
	}

	return s
}

// ByCity returns the landmarks for a city (case-insensitive). An
// unknown or empty city returns all landmarks so matching can still
// proceed, just over a wider candidate set.
func (s *Snapshot) ByCity(city string) []*Landmark {
	key := strings.ToLower(strings.TrimSpace(city))
	if key != "" {
		if lms, ok := s.byCity[key]; ok {
			return lms
		}
	}

	all := make([]*Landmark, 0, len(s.Landmarks))
	for i := range s.Landmarks {
		all = append(all, &s.Landmarks[i])
	}
	return all
}

// Vocabulary returns every known landmark name and alias, lowercased
// and deduplicated. Used to snap noisy extracted mentions onto known
// spellings.
func (s *Snapshot) Vocabulary() []string {
	return s.vocabulary
}

// Size returns the number of landmarks in the snapshot.
func (s *Snapshot) Size() int {
	return len(s.Landmarks)
}

// Cities returns the distinct cities in the snapshot, sorted.
func (s *Snapshot) Cities() []string {
	cities := make([]string, 0, len(s.byCity))
	for city := range s.byCity {
		if city != "" {
			cities = append(cities, city)
		}
	}
	sort.Strings(cities)
	return cities
}
