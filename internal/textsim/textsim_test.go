package textsim

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"mandir", "", 6},
		{"", "temple", 6},
		{"mandir", "mandir", 0},
		{"mandir", "mandar", 1},
		{"shiv", "shiva", 1},
		{"hospital", "hospitl", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b    string
		wantMin int
		wantMax int
	}{
		{"shiv mandir", "shiv mandir", 100, 100},
		{"shiv mandir", "shiva mandir", 90, 99},
		{"metro station", "bus depot", 0, 40},
		{"", "", 100, 100},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if got < tt.wantMin || got > tt.wantMax {
			t.Errorf("Ratio(%q, %q) = %d, want in [%d, %d]", tt.a, tt.b, got, tt.wantMin, tt.wantMax)
		}
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("mandir shiv", "shiv mandir"); got != 100 {
		t.Errorf("reordered tokens should score 100, got %d", got)
	}

	plain := Ratio("sai baba temple", "temple sai baba")
	sorted := TokenSortRatio("sai baba temple", "temple sai baba")
	if sorted <= plain {
		t.Errorf("token sort should beat plain ratio on reordered input: %d <= %d", sorted, plain)
	}
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"shiv mandir", "sai baba temple", "andheri metro station"}

	got, score := BestMatch("shiva mandir", candidates)
	if got != "shiv mandir" {
		t.Errorf("BestMatch = %q, want %q", got, "shiv mandir")
	}
	if score < 80 {
		t.Errorf("score = %d, want >= 80", score)
	}

	got, score = BestMatch("anything", nil)
	if got != "" || score != 0 {
		t.Errorf("empty candidates should return (\"\", 0), got (%q, %d)", got, score)
	}
}
