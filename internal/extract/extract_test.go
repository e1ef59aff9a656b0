package extract

import (
	"testing"
)

func testVocabulary() []string {
	return []string{
		"shiv mandir",
		"sai baba temple",
		"andheri railway station",
		"central mall",
		"cooper hospital",
		"sarafa bazaar",
	}
}

func findByCategory(landmarks []Landmark, category string) *Landmark {
	for i := range landmarks {
		if landmarks[i].Category == category {
			return &landmarks[i]
		}
	}
	return nil
}

func TestExtractCategoryPatterns(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		text     string
		category string
		want     string
	}{
		{"temple", "opposite shiv mandir, andheri east", "religious", "shiv mandir"},
		{"station", "near andheri railway station, mumbai", "transport", "andheri railway station"},
		{"hospital", "behind cooper hospital, vile parle", "health", "cooper hospital"},
		{"market", "close to sarafa bazaar, indore", "commercial", "sarafa bazaar"},
		{"school", "opposite st marys school, pune", "education", "marys school"},
		{"chowk", "near rajiv chowk, delhi", "infrastructure", "rajiv chowk"},
		{"society", "sunshine society, powai", "residential", "sunshine society"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			landmarks := e.Extract(tt.text)
			lm := findByCategory(landmarks, tt.category)
			if lm == nil {
				t.Fatalf("Extract(%q): no %s landmark in %+v", tt.text, tt.category, landmarks)
			}
			if lm.Text != tt.want {
				t.Errorf("Extract(%q): got text %q, want %q", tt.text, lm.Text, tt.want)
			}
			if lm.Confidence != 0.9 {
				t.Errorf("pattern extraction confidence = %v, want 0.9", lm.Confidence)
			}
		})
	}
}

func TestExtractPositional(t *testing.T) {
	e := New(nil)

	// "sharma tea stall" matches no category pattern, so only the
	// positional rule sees it.
	landmarks := e.Extract("2nd lane, behind sharma tea stall, vijay nagar")

	var positional *Landmark
	for i := range landmarks {
		if landmarks[i].Position == "behind" {
			positional = &landmarks[i]
			break
		}
	}
	if positional == nil {
		t.Fatalf("no positional landmark extracted: %+v", landmarks)
	}
	if positional.Text != "sharma tea stall" {
		t.Errorf("positional text = %q, want %q", positional.Text, "sharma tea stall")
	}
	if positional.Confidence != 0.75 {
		t.Errorf("positional confidence = %v, want 0.75", positional.Confidence)
	}
	if positional.Category != "referenced" {
		t.Errorf("positional category = %q, want %q", positional.Category, "referenced")
	}
}

func TestExtractPositionalSkipsShortAndNumeric(t *testing.T) {
	e := New(nil)

	for _, text := range []string{"near 402, sector 8", "opposite ab, main road"} {
		for _, lm := range e.Extract(text) {
			if lm.Position != "" {
				t.Errorf("Extract(%q): unexpected positional landmark %+v", text, lm)
			}
		}
	}
}

func TestExtractFallback(t *testing.T) {
	e := New(nil)

	// No category indicator and no positional keyword, so only the
	// generic fallback can pick up the named segment.
	landmarks := e.Extract("gokul dham, street 4")

	lm := findByCategory(landmarks, "generic")
	if lm == nil {
		t.Fatalf("no generic landmark extracted: %+v", landmarks)
	}
	if lm.Text != "gokul dham" {
		t.Errorf("fallback text = %q, want %q", lm.Text, "gokul dham")
	}
	if lm.Confidence != 0.6 {
		t.Errorf("fallback confidence = %v, want 0.6", lm.Confidence)
	}
}

func TestExtractFallbackSuppressedWhenEnoughFound(t *testing.T) {
	e := New(nil)

	landmarks := e.Extract("near shiv mandir, opposite central mall, gokul dham colony")
	if lm := findByCategory(landmarks, "generic"); lm != nil {
		t.Errorf("fallback fired despite two primary extractions: %+v", lm)
	}
}

func TestExtractVocabularySnap(t *testing.T) {
	e := New(testVocabulary)

	landmarks := e.Extract("opp shiva mandir, andheri east")
	if len(landmarks) == 0 {
		t.Fatal("no landmarks extracted")
	}

	snapped := false
	for _, lm := range landmarks {
		if lm.Normalized == "shiv mandir" {
			snapped = true
		}
	}
	if !snapped {
		t.Errorf("expected %q to snap onto %q: %+v", "shiva mandir", "shiv mandir", landmarks)
	}
}

func TestExtractDedupe(t *testing.T) {
	e := New(nil)

	// The temple is both a pattern hit (0.9) and a positional phrase
	// (0.75) on the same span; only the stronger one survives.
	landmarks := e.Extract("opposite shiv mandir")
	if len(landmarks) != 1 {
		t.Fatalf("got %d landmarks, want 1: %+v", len(landmarks), landmarks)
	}
	if landmarks[0].Confidence != 0.9 {
		t.Errorf("kept confidence = %v, want 0.9", landmarks[0].Confidence)
	}
	if landmarks[0].Position != "opposite" {
		t.Errorf("merged position = %q, want %q", landmarks[0].Position, "opposite")
	}
}

func TestExtractKeepsPositionsAcrossDedupe(t *testing.T) {
	e := New(nil)

	// Both landmarks are pattern hits, but each is also introduced by a
	// positional keyword; the surviving mentions must carry those.
	landmarks := e.Extract("Near Shiv Temple, Opposite Railway Station")
	if len(landmarks) < 2 {
		t.Fatalf("got %d landmarks, want at least 2: %+v", len(landmarks), landmarks)
	}

	positions := make(map[string]bool)
	for _, lm := range landmarks {
		positions[lm.Position] = true
	}
	if !positions["near"] {
		t.Errorf("no landmark with position %q: %+v", "near", landmarks)
	}
	if !positions["opposite"] {
		t.Errorf("no landmark with position %q: %+v", "opposite", landmarks)
	}
}

func TestExtractEmpty(t *testing.T) {
	e := New(nil)
	if got := e.Extract("   "); len(got) != 0 {
		t.Errorf("Extract(blank) = %+v, want none", got)
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"near shiv mandir, behind sharma tea stall", []string{"near", "behind"}},
		{"opp central mall", []string{"opposite"}},
		{"nxt to cooper hospital", []string{"near"}},
		{"after city hospital, before axis bank", []string{"after", "before"}},
		{"just past the toll naka", []string{"after"}},
		{"main road, vijay nagar", nil},
	}

	for _, tt := range tests {
		got := Directions(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("Directions(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Directions(%q) = %v, want %v", tt.text, got, tt.want)
				break
			}
		}
	}
}

func TestStreet(t *testing.T) {
	info := Street("flat 203, 2nd lane, gali no 4, near shiv mandir")

	if len(info.StreetNumbers) != 2 {
		t.Fatalf("got %d street numbers, want 2: %+v", len(info.StreetNumbers), info.StreetNumbers)
	}
	if info.StreetNumbers[0].Number != "2" || info.StreetNumbers[0].Type != "lane" {
		t.Errorf("street[0] = %+v, want number 2 type lane", info.StreetNumbers[0])
	}
	if info.StreetNumbers[1].Number != "4" || info.StreetNumbers[1].Type != "gali" {
		t.Errorf("street[1] = %+v, want number 4 type gali", info.StreetNumbers[1])
	}

	if len(info.BuildingNumbers) != 1 {
		t.Fatalf("got %d building numbers, want 1: %+v", len(info.BuildingNumbers), info.BuildingNumbers)
	}
	if info.BuildingNumbers[0].Number != "203" {
		t.Errorf("building number = %q, want 203", info.BuildingNumbers[0].Number)
	}
}

func TestStreetAlphanumericFlat(t *testing.T) {
	info := Street("plot no 12a, phase 2")
	if len(info.BuildingNumbers) != 1 || info.BuildingNumbers[0].Number != "12a" {
		t.Errorf("got %+v, want building number 12a", info.BuildingNumbers)
	}
}
