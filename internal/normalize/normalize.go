// Package normalize turns messy Indian address text into a clean,
// standardized form and pulls out the pincode, city, and state along
// the way. Everything here is rule-based: expansion tables plus regex
// patterns, no trained model.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	noisePunctRe = regexp.MustCompile(`[,\.\-]{2,}`)
	dirSuffixRe  = regexp.MustCompile(`\(([ewns])\)`)

	abbrevRe = compileTableRe(EnglishAbbreviations, true)
	transRe  = compileTableRe(Transliterations, false)
	cityRe   = compileTableRe(CityAliases, false)
)

var directionSuffixes = map[string]string{
	"e": "east", "w": "west", "n": "north", "s": "south",
}

// compileTableRe builds a whole-word alternation over the table keys,
// longest key first so "b/h" wins over "bh". withPeriod allows an
// optional trailing period, as in "opp." or "rd.".
func compileTableRe(table map[string]string, withPeriod bool) *regexp.Regexp {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = regexp.QuoteMeta(k)
	}

	pattern := `\b(` + strings.Join(escaped, "|") + `)`
	if withPeriod {
		pattern += `\.?`
	}
	pattern += `\b`
	return regexp.MustCompile(pattern)
}

// Expander rewrites address text with abbreviations expanded. The
// default implementation is table-driven; a libpostal-backed one can
// be plugged in where the C library is available.
type Expander interface {
	Expand(text string) string
}

// Corrector fixes a single token's spelling. ok is false when no
// correction applies and the original token should be kept.
type Corrector interface {
	Correct(word string) (corrected string, ok bool)
}

// Result is the normalized view of one raw address.
type Result struct {
	Text     string `json:"text"`
	Pincode  string `json:"pincode,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Original string `json:"original"`
}

// Normalizer applies the transformation sequence. Zero value is not
// usable; construct with New.
type Normalizer struct {
	expander        Expander
	corrector       Corrector
	localityAliases map[string]map[string]string
	translateHindi  bool
	normalizeCities bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithExpander replaces the table-driven abbreviation expander.
func WithExpander(e Expander) Option {
	return func(n *Normalizer) { n.expander = e }
}

// WithCorrector enables spell correction using the given corrector.
func WithCorrector(c Corrector) Option {
	return func(n *Normalizer) { n.corrector = c }
}

// WithLocalityAliases adds city-keyed locality alias maps applied after
// the city is identified.
func WithLocalityAliases(aliases map[string]map[string]string) Option {
	return func(n *Normalizer) { n.localityAliases = aliases }
}

// WithoutTransliterations disables Hindi transliteration handling.
func WithoutTransliterations() Option {
	return func(n *Normalizer) { n.translateHindi = false }
}

// WithoutCityNormalization disables old-name to new-name city mapping.
func WithoutCityNormalization() Option {
	return func(n *Normalizer) { n.normalizeCities = false }
}

// New creates a Normalizer with the default table-driven expander.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		expander:        tableExpander{},
		translateHindi:  true,
		normalizeCities: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize runs the full transformation sequence on one address.
// The pincode is captured before any substitution so expansions cannot
// mangle it.
func (n *Normalizer) Normalize(address string) Result {
	if strings.TrimSpace(address) == "" {
		return Result{Original: address}
	}

	text := CleanText(address)
	pincode := ExtractPincode(text)

	text = expandDirectionSuffixes(text)
	text = n.expander.Expand(text)

	if n.translateHindi {
		text = transRe.ReplaceAllStringFunc(text, func(m string) string {
			if repl, ok := Transliterations[strings.ToLower(m)]; ok {
				return repl
			}
			return m
		})
	}

	if n.normalizeCities {
		text = cityRe.ReplaceAllStringFunc(text, func(m string) string {
			if repl, ok := CityAliases[strings.ToLower(m)]; ok {
				return repl
			}
			return m
		})
	}

	if n.corrector != nil {
		text = correctText(text, n.corrector)
	}

	text = cleanNoise(text)

	state := DetectState(text)
	city := DetectCity(text)

	if city != "" && n.localityAliases != nil {
		text = n.applyLocalityAliases(text, city)
	}

	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	return Result{
		Text:     text,
		Pincode:  pincode,
		State:    state,
		City:     city,
		Original: address,
	}
}

// CleanText applies the base cleanup: NFKC unicode normalization,
// lowercasing, and whitespace collapsing. Punctuation survives since
// it carries structure in addresses.
func CleanText(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// tableExpander is the default Expander, driven by the abbreviation
// table.
type tableExpander struct{}

func (tableExpander) Expand(text string) string {
	out := abbrevRe.ReplaceAllStringFunc(text, func(m string) string {
		key := strings.ToLower(strings.TrimSuffix(m, "."))
		if repl, ok := EnglishAbbreviations[key]; ok {
			return repl
		}
		return m
	})
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
}

// expandDirectionSuffixes turns "(e)" style suffixes into words, as in
// Mumbai's "andheri (e)".
func expandDirectionSuffixes(text string) string {
	return dirSuffixRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := dirSuffixRe.FindStringSubmatch(m)
		if repl, ok := directionSuffixes[sub[1]]; ok {
			return repl
		}
		return m
	})
}

// correctText runs the corrector over each token. Short tokens and
// tokens containing digits are left alone: those are mostly proper
// nouns, house numbers, and pincodes. Punctuation stuck to a token is
// peeled off for the lookup and reattached after.
func correctText(text string, corrector Corrector) string {
	words := strings.Fields(text)
	for i, word := range words {
		core := strings.Trim(word, ".,;:-")
		if len(core) <= 2 || strings.ContainsAny(core, "0123456789") {
			continue
		}
		fixed, ok := corrector.Correct(core)
		if !ok {
			continue
		}
		prefix := word[:strings.Index(word, core)]
		suffix := word[strings.Index(word, core)+len(core):]
		words[i] = prefix + fixed + suffix
	}
	return strings.Join(words, " ")
}

// cleanNoise collapses runs of punctuation and retrims every
// comma-separated segment.
func cleanNoise(text string) string {
	text = noisePunctRe.ReplaceAllStringFunc(text, func(m string) string {
		return m[:1]
	})

	segments := strings.Split(text, ",")
	kept := segments[:0]
	for _, s := range segments {
		s = strings.Trim(s, " .,;:-")
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}

// DetectState scans for a state name or alias and returns the state
// code, or "".
func DetectState(text string) string {
	padded := " " + strings.ToLower(text) + " "

	for code, info := range IndianStates {
		if strings.Contains(padded, strings.ToLower(info.Name)) {
			return code
		}
	}
	// Alias hits require exact word boundaries since codes like "up"
	// and "or" collide with ordinary words.
	for code, info := range IndianStates {
		for _, alias := range info.Aliases {
			if len(alias) <= 2 {
				continue
			}
			if strings.Contains(padded, " "+strings.ToLower(alias)+" ") {
				return code
			}
		}
	}
	return ""
}

// DetectCity scans for a major city name and returns it in title-ish
// canonical form, or "".
func DetectCity(text string) string {
	lower := strings.ToLower(text)
	for _, city := range MajorCities {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}

func (n *Normalizer) applyLocalityAliases(text, city string) string {
	aliases, ok := n.localityAliases[strings.ToLower(city)]
	if !ok {
		return text
	}

	// Longest variant first so "bhanwar kuan" is not half-replaced by a
	// shorter key.
	variants := make([]string, 0, len(aliases))
	for v := range aliases {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool {
		return len(variants[i]) > len(variants[j])
	})

	for _, v := range variants {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(v) + `\b`)
		text = re.ReplaceAllString(text, strings.ToLower(aliases[v]))
	}
	return text
}
