package symspell

import (
	"testing"
)

func buildTestDictionary() *SymSpell {
	entries := []DictionaryEntry{
		// Localities
		{Term: "andheri", Frequency: 5000},
		{Term: "palasia", Frequency: 3000},
		{Term: "khajrana", Frequency: 2000},
		{Term: "koramangala", Frequency: 2500},
		{Term: "bhanwarkuan", Frequency: 1200},
		// Address vocabulary
		{Term: "mandir", Frequency: 8000},
		{Term: "temple", Frequency: 8000},
		{Term: "hospital", Frequency: 7000},
		{Term: "station", Frequency: 6000},
		{Term: "market", Frequency: 6000},
		{Term: "colony", Frequency: 5000},
		{Term: "nagar", Frequency: 9000},
		// Suffixes
		{Term: "road", Frequency: 50000},
		{Term: "street", Frequency: 40000},
		{Term: "lane", Frequency: 30000},
	}

	ss := New(&Config{
		MaxEditDistance: 2,
		MinTermLength:   3,
		MinFrequency:    1,
		Enabled:         true,
	})
	ss.AddTerms(entries)
	return ss
}

func TestSymSpellLookup(t *testing.T) {
	ss := buildTestDictionary()

	tests := []struct {
		name         string
		input        string
		wantTerm     string
		wantDistance int
	}{
		{name: "exact match", input: "andheri", wantTerm: "andheri", wantDistance: 0},
		{name: "single deletion", input: "hosptal", wantTerm: "hospital", wantDistance: 1},
		{name: "single insertion", input: "roadd", wantTerm: "road", wantDistance: 1},
		{name: "substitution", input: "mandur", wantTerm: "mandir", wantDistance: 1},
		{name: "transposition", input: "tempel", wantTerm: "temple", wantDistance: 1},
		{name: "missing vowel", input: "kormangala", wantTerm: "koramangala", wantDistance: 1},
		{name: "case insensitive", input: "ANDHERI", wantTerm: "andheri", wantDistance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := ss.LookupBest(tt.input, 2)
			if best == nil {
				t.Fatalf("LookupBest(%q) = nil", tt.input)
			}
			if best.Term != tt.wantTerm {
				t.Errorf("Term = %q, want %q", best.Term, tt.wantTerm)
			}
			if best.Distance != tt.wantDistance {
				t.Errorf("Distance = %d, want %d", best.Distance, tt.wantDistance)
			}
		})
	}
}

func TestSymSpellNoMatchBeyondDistance(t *testing.T) {
	ss := buildTestDictionary()

	if got := ss.LookupBest("zzzzzzz", 2); got != nil {
		t.Errorf("LookupBest(zzzzzzz) = %+v, want nil", got)
	}
}

func TestSymSpellFrequencyTieBreak(t *testing.T) {
	ss := New(DefaultConfig())
	ss.AddTerm("nagar", 9000)
	ss.AddTerm("nagab", 10)

	// "nagat" is distance 1 from both; higher frequency should win.
	best := ss.LookupBest("nagat", 2)
	if best == nil || best.Term != "nagar" {
		t.Fatalf("LookupBest(nagat) = %+v, want nagar", best)
	}
}

func TestSymSpellShortTermsIgnored(t *testing.T) {
	ss := New(DefaultConfig())
	ss.AddTerm("ab", 100)

	if ss.Contains("ab") {
		t.Error("terms below MinTermLength should not be indexed")
	}
}

func TestCorrector(t *testing.T) {
	c := NewCorrectorFromVocabulary(nil,
		[]string{"shiv mandir", "sai baba temple"},
		[]string{"road", "hospital", "market"},
	)

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"mandirr", "mandir", true},
		{"hosptal", "hospital", true},
		{"mandir", "mandir", false},
		{"ab", "ab", false},
		{"12a", "12a", false},
		{"xyzzy", "xyzzy", false},
	}

	for _, tt := range tests {
		got, ok := c.Correct(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Correct(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCorrectorRebuild(t *testing.T) {
	c := NewCorrector([]DictionaryEntry{{Term: "temple", Frequency: 1}}, nil)

	if _, ok := c.Correct("statoin"); ok {
		t.Error("correction should fail before station enters the dictionary")
	}

	c.Rebuild([]DictionaryEntry{
		{Term: "temple", Frequency: 1},
		{Term: "station", Frequency: 1},
	})

	got, ok := c.Correct("statoin")
	if !ok || got != "station" {
		t.Errorf("Correct(statoin) = (%q, %v), want (station, true)", got, ok)
	}
}
