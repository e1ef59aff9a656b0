package normalize

import "testing"

func TestNormalize(t *testing.T) {
	n := New()

	tests := []struct {
		name     string
		input    string
		wantText string
		wantPin  string
		wantCity string
	}{
		{
			name:     "abbreviations and transliteration",
			input:    "opp to shiv mandir, 400069",
			wantText: "opposite to shiv temple, 400069",
			wantPin:  "400069",
		},
		{
			name:     "classic messy address",
			input:    "nr shiv temple, 2nd gali, opp rly stn, mumbai",
			wantText: "near shiv temple, 2nd lane, opposite railway station, mumbai",
			wantCity: "mumbai",
		},
		{
			name:     "direction suffix and city alias",
			input:    "Andheri (E), Bombay",
			wantText: "andheri east, mumbai",
			wantCity: "mumbai",
		},
		{
			name:     "noisy punctuation",
			input:    "flat 203,, opp hosp..  main rd,",
			wantText: "flat 203, opposite hospital. main road",
		},
		{
			name:     "hyphenated pincode",
			input:    "dadar west 400-028",
			wantText: "dadar west 400-028",
			wantPin:  "400028",
		},
		{
			name:  "empty input",
			input: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Pincode != tt.wantPin {
				t.Errorf("Pincode = %q, want %q", got.Pincode, tt.wantPin)
			}
			if got.City != tt.wantCity {
				t.Errorf("City = %q, want %q", got.City, tt.wantCity)
			}
			if got.Original != tt.input {
				t.Errorf("Original = %q, want %q", got.Original, tt.input)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New()

	inputs := []string{
		"opp to shiv mandir, 400069",
		"nr shiv temple, 2nd gali, opp rly stn, mumbai",
		"H.No. 42, bhnd big mkt, nagr colony",
		"flat 203, sec 12, noida, up 201301",
	}

	for _, input := range inputs {
		once := n.Normalize(input).Text
		twice := n.Normalize(once).Text
		if once != twice {
			t.Errorf("normalize not idempotent for %q:\n once: %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestNormalizeState(t *testing.T) {
	n := New()

	tests := []struct {
		input string
		want  string
	}{
		{"andheri east, mumbai, maharashtra", "MH"},
		{"connaught place, new delhi", "DL"},
		{"palasia, indore, madhya pradesh", "MP"},
		{"plain address with no state", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.input).State; got != tt.want {
			t.Errorf("Normalize(%q).State = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeWithCorrector(t *testing.T) {
	n := New(WithCorrector(NewBasicCorrector()))

	got := n.Normalize("opsite big hosptal, main raod")
	want := "opposite big hospital, main road"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestNormalizeLocalityAliases(t *testing.T) {
	n := New(WithLocalityAliases(map[string]map[string]string{
		"indore": {"vijaynagar": "Vijay Nagar"},
	}))

	got := n.Normalize("plot 5, vijaynagar, indore")
	want := "plot 5, vijay nagar, indore"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestValidPincode(t *testing.T) {
	tests := []struct {
		pincode string
		want    bool
	}{
		{"400069", true},
		{"110001", true},
		{"400-069", true},
		{"400 069", true},
		{"040069", false},
		{"40006", false},
		{"4000690", false},
		{"4ooo69", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPincode(tt.pincode); got != tt.want {
			t.Errorf("ValidPincode(%q) = %v, want %v", tt.pincode, got, tt.want)
		}
	}
}

func TestExtractPincode(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"andheri east 400069", "400069"},
		{"mumbai - 400001, maharashtra", "400001"},
		{"pin: 560034 bengaluru", "560034"},
		{"400-069 andheri", "400069"},
		{"phone 9820012345 is not a pin", ""},
		{"no digits here", ""},
		{"012345 leading zero invalid", ""},
	}

	for _, tt := range tests {
		if got := ExtractPincode(tt.text); got != tt.want {
			t.Errorf("ExtractPincode(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestPincodeRegion(t *testing.T) {
	tests := []struct {
		pincode string
		want    string
	}{
		{"110001", "Northern"},
		{"400069", "Western-Central"},
		{"560034", "Southern"},
		{"700001", "Eastern"},
		{"invalid", ""},
	}

	for _, tt := range tests {
		if got := PincodeRegion(tt.pincode); got != tt.want {
			t.Errorf("PincodeRegion(%q) = %q, want %q", tt.pincode, got, tt.want)
		}
	}
}

func TestPincodeCityConsistent(t *testing.T) {
	tests := []struct {
		pincode, city string
		want          bool
	}{
		{"400069", "mumbai", true},
		{"400069", "Mumbai", true},
		{"110001", "delhi", true},
		{"400069", "delhi", false},
		{"invalid", "mumbai", false},
		{"400069", "", false},
	}

	for _, tt := range tests {
		if got := PincodeCityConsistent(tt.pincode, tt.city); got != tt.want {
			t.Errorf("PincodeCityConsistent(%q, %q) = %v, want %v", tt.pincode, tt.city, got, tt.want)
		}
	}
}
