// Package extract pulls location-bearing entities out of normalized
// address text: named landmarks with a category, positional references
// ("near X", "behind Y"), and street or building numbers. Extraction
// is pattern-based with a generic fallback, so it needs no trained
// model and its decisions stay inspectable.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/addresspin/internal/textsim"
)

// Landmark is one extracted landmark mention.
type Landmark struct {
	// Text is the span as it appeared in the address.
	Text string `json:"text"`

	// Category classifies the landmark (religious, transport, ...) or
	// is "referenced" for purely positional mentions and "generic" for
	// fallback extractions.
	Category string `json:"category"`

	// Normalized is the cleaned mention, snapped onto a known landmark
	// name when one is close enough.
	Normalized string `json:"normalized"`

	// Position is the canonical positional relation (near, opposite,
	// behind, above, below, inside), empty for pattern hits.
	Position string `json:"position,omitempty"`

	// Keyword is the literal positional keyword matched ("nxt to",
	// "opp"), which carries more detail than the canonical Position.
	Keyword string `json:"keyword,omitempty"`

	// Confidence grades the extraction method: 0.9 pattern, 0.75
	// positional, 0.6 generic fallback.
	Confidence float64 `json:"confidence"`

	Start int `json:"start"`
	End   int `json:"end"`
}

// StreetNumber is a numbered street or lane reference.
type StreetNumber struct {
	Number string `json:"number"`
	Type   string `json:"type"`
	Text   string `json:"text"`
}

// BuildingNumber is a flat, floor, plot, or house number.
type BuildingNumber struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// StreetInfo groups the numeric address components.
type StreetInfo struct {
	StreetNumbers   []StreetNumber   `json:"street_numbers,omitempty"`
	BuildingNumbers []BuildingNumber `json:"building_numbers,omitempty"`
}

// positionalKeywords maps each canonical position to the keyword
// variants that signal it. Longer keywords are matched first.
var positionalKeywords = map[string][]string{
	"near":     {"near", "nr", "close to", "beside", "next to", "nxt to", "adjacent"},
	"opposite": {"opposite", "opp to", "opp", "facing", "across from", "in front of"},
	"behind":   {"behind", "bhnd", "b/h", "back of", "at back", "rear of"},
	"after":    {"after", "past"},
	"before":   {"before"},
	"above":    {"above", "upstairs from", "on top of"},
	"below":    {"below", "under", "downstairs from", "beneath"},
	"inside":   {"inside", "within"},
}

// categoryPatterns detects landmark types by their trailing indicator
// word. Checked against lowercased text.
var categoryPatterns = map[string]*regexp.Regexp{
	"religious": regexp.MustCompile(`(?:shri|shree|sri)?\s*\w+\s*(?:mandir|temple|devasthan)|(?:jama|jamia)?\s*\w*\s*(?:masjid|mosque|dargah)|\w+\s*(?:church|cathedral|chapel)|(?:gurudwara|gurdwara)\s*(?:sahib)?|\w+\s*(?:math|mutt|ashram)`),
	"transport": regexp.MustCompile(`\w+\s*(?:railway|rly)\s*(?:station|stn)|\w+\s*bus\s*(?:stand|stop|station|depot)|\w+\s*metro\s*(?:station|stn)?|\w+\s*(?:airport|airfield)|\w+\s*(?:junction|jn)`),
	"commercial": regexp.MustCompile(`\w+\s*(?:market|mkt|bazaar|bazar|mandi|haat)|\w+\s*(?:mall|plaza|arcade)|\w+\s*(?:hotel|lodge|inn|dhaba)|\w+\s*(?:shop|store|showroom|emporium)|\w+\s*(?:bank|atm)|\w+\s*(?:petrol|gas)\s*(?:pump|station|bunk)`),
	"education": regexp.MustCompile(`\w+\s*(?:school|vidyalaya|pathshala)|\w+\s*(?:college|mahavidyalaya)|\w+\s*(?:university|vishwavidyalaya)|\w+\s*(?:institute|academy)|\w+\s*(?:coaching|classes|tuition)`),
	"health": regexp.MustCompile(`\w+\s*(?:hospital|hosp|nursing\s*home)|\w+\s*(?:clinic|dispensary|polyclinic)|\w+\s*(?:medical|medicals|pharmacy|chemist)`),
	"government": regexp.MustCompile(`\w*\s*police\s*(?:station|chowki|thana)|\w*\s*post\s*office|\w*\s*(?:court|kacheri)|(?:collector|tehsil|taluka)\s*(?:office)?|\w+\s*(?:bhavan|bhawan|sadan)`),
	"infrastructure": regexp.MustCompile(`\w+\s*(?:bridge|pul|setu|overbridge|flyover)|\w+\s*(?:signal|traffic\s*light)|\w+\s*(?:chowk|chawk|chauk|circle|square|roundabout)|\w+\s*(?:naka|toll|crossing)|\w+\s*(?:park|garden|baug|bagh|maidan|ground)`),
	"residential": regexp.MustCompile(`\w+\s*(?:society|complex|apartment|apts|tower)|\w+\s*(?:nagar|puram|colony|enclave|vihar|kunj)|\w+\s*(?:chawl|chawls|tenement)|\w+\s*(?:layout|phase|sector)`),
}

var (
	streetNumberRe = regexp.MustCompile(`\b(\d+)(?:st|nd|rd|th)?\s*(lane|gali|gully|street|road|cross|main)\b|\b(lane|gali|gully|street|road)\s*(?:no\.?|number)?\s*(\d+)\b`)

	buildingNumberRe = regexp.MustCompile(`\b(?:flat|apartment|apt|floor|flr|block|blk|plot|house|house number|hno|h\.no)\s*(?:no\.?|number)?\s*[:\-]?\s*(\d+[a-z]?)\b`)

	digitsOnlyRe = regexp.MustCompile(`^\d+$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// positionalRes is built once: one regex per keyword capturing the
// phrase up to the next comma, hyphen, or end of text.
type positionalRule struct {
	position string
	keyword  string
	re       *regexp.Regexp
}

var positionalRules = buildPositionalRules()

func buildPositionalRules() []positionalRule {
	var rules []positionalRule
	for position, keywords := range positionalKeywords {
		for _, kw := range keywords {
			rules = append(rules, positionalRule{
				position: position,
				keyword:  kw,
				re: regexp.MustCompile(
					`\b` + regexp.QuoteMeta(kw) + `\s+([^,\-\n]+?)(?:[,\-]|$)`),
			})
		}
	}
	// Longer keywords first so "opp to" wins over "opp" on the same
	// span, then dedup keeps the more specific hit.
	sort.Slice(rules, func(i, j int) bool {
		return len(rules[i].keyword) > len(rules[j].keyword)
	})
	return rules
}

// Extractor extracts landmarks from normalized text. Vocabulary, when
// set, supplies known landmark names for fuzzy snapping.
type Extractor struct {
	// MinConfidence filters out weak extractions. Defaults to 0.5.
	MinConfidence float64

	// SnapThreshold is the minimum token-sort score (0-100) to snap a
	// mention onto a known name. Defaults to 80.
	SnapThreshold int

	// Vocabulary returns the current known landmark names. May be nil.
	Vocabulary func() []string
}

// New returns an extractor with default thresholds.
func New(vocabulary func() []string) *Extractor {
	return &Extractor{
		MinConfidence: 0.5,
		SnapThreshold: 80,
		Vocabulary:    vocabulary,
	}
}

// Extract returns the deduplicated landmark mentions found in the
// text, ordered by confidence descending.
func (e *Extractor) Extract(text string) []Landmark {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []Landmark
	found = append(found, e.byPatterns(lower)...)
	found = append(found, e.byPosition(lower)...)

	// Fallback only fires when the primary methods came up short,
	// since it trades precision for recall.
	if len(found) < 2 {
		for _, lm := range e.byFallback(lower) {
			if !overlapsAny(lm, found) {
				found = append(found, lm)
			}
		}
	}

	found = dedupe(found)

	kept := found[:0]
	minConf := e.MinConfidence
	if minConf == 0 {
		minConf = 0.5
	}
	for _, lm := range found {
		if lm.Confidence >= minConf {
			kept = append(kept, lm)
		}
	}
	return kept
}

func (e *Extractor) byPatterns(lower string) []Landmark {
	var results []Landmark
	for category, re := range categoryPatterns {
		for _, span := range re.FindAllStringIndex(lower, -1) {
			matched := strings.TrimSpace(lower[span[0]:span[1]])
			if len(matched) < 3 {
				continue
			}
			results = append(results, Landmark{
				Text:       matched,
				Category:   category,
				Normalized: e.normalize(matched),
				Confidence: 0.9,
				Start:      span[0],
				End:        span[1],
			})
		}
	}
	return results
}

func (e *Extractor) byPosition(lower string) []Landmark {
	var results []Landmark
	for _, rule := range positionalRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(lower, -1) {
			phrase := strings.TrimSpace(lower[m[2]:m[3]])
			if len(phrase) < 4 {
				continue
			}
			if digitsOnlyRe.MatchString(strings.ReplaceAll(phrase, " ", "")) {
				continue
			}
			results = append(results, Landmark{
				Text:       phrase,
				Category:   "referenced",
				Normalized: e.normalize(phrase),
				Position:   rule.position,
				Keyword:    rule.keyword,
				Confidence: 0.75,
				Start:      m[2],
				End:        m[3],
			})
		}
	}
	return results
}

// byFallback extracts comma-separated segments that look like named
// places: two or more alphabetic tokens with no digits and no
// positional keyword. Low confidence since this casts a wide net.
func (e *Extractor) byFallback(lower string) []Landmark {
	var results []Landmark
	offset := 0

	for _, segment := range strings.Split(lower, ",") {
		start := offset + leadingSpace(segment)
		trimmed := strings.TrimSpace(segment)
		offset += len(segment) + 1

		if trimmed == "" || strings.ContainsAny(trimmed, "0123456789") {
			continue
		}
		tokens := strings.Fields(trimmed)
		if len(tokens) < 2 || hasPositionalKeyword(trimmed) {
			continue
		}

		results = append(results, Landmark{
			Text:       trimmed,
			Category:   "generic",
			Normalized: e.normalize(trimmed),
			Confidence: 0.6,
			Start:      start,
			End:        start + len(trimmed),
		})
	}
	return results
}

// normalize cleans the mention and snaps it onto the closest known
// landmark name when the vocabulary has one close enough.
func (e *Extractor) normalize(text string) string {
	cleaned := strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
	if e.Vocabulary == nil || cleaned == "" {
		return cleaned
	}

	threshold := e.SnapThreshold
	if threshold == 0 {
		threshold = 80
	}

	best, score := textsim.BestMatch(cleaned, e.Vocabulary())
	if score >= threshold {
		return best
	}
	return cleaned
}

// Directions returns the unique canonical positional relations present
// in the text, in first-appearance order.
func Directions(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		position string
		index    int
	}
	var hits []hit
	seen := make(map[string]bool)

	for _, rule := range positionalRules {
		if seen[rule.position] {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(rule.keyword) + `\b`)
		if loc := re.FindStringIndex(lower); loc != nil {
			seen[rule.position] = true
			hits = append(hits, hit{position: rule.position, index: loc[0]})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].index < hits[j].index })

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.position
	}
	return out
}

// Street extracts street and building numbers from the text.
func Street(text string) StreetInfo {
	lower := strings.ToLower(text)
	var info StreetInfo

	for _, m := range streetNumberRe.FindAllStringSubmatch(lower, -1) {
		var number, streetType string
		if m[1] != "" {
			number, streetType = m[1], m[2]
		} else {
			streetType, number = m[3], m[4]
		}
		info.StreetNumbers = append(info.StreetNumbers, StreetNumber{
			Number: number,
			Type:   streetType,
			Text:   strings.TrimSpace(m[0]),
		})
	}

	for _, m := range buildingNumberRe.FindAllStringSubmatch(lower, -1) {
		info.BuildingNumbers = append(info.BuildingNumbers, BuildingNumber{
			Number: m[1],
			Text:   strings.TrimSpace(m[0]),
		})
	}

	return info
}

func hasPositionalKeyword(text string) bool {
	for _, keywords := range positionalKeywords {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

func overlapsAny(lm Landmark, existing []Landmark) bool {
	for _, other := range existing {
		if lm.Start < other.End && lm.End > other.Start {
			return true
		}
	}
	return false
}

// dedupe keeps the highest-confidence mention per normalized form and
// drops spans that overlap an already-kept mention. A dropped
// positional mention hands its Position and Keyword to the survivor,
// so a stronger pattern hit over the same span still reports how the
// landmark was referenced.
func dedupe(landmarks []Landmark) []Landmark {
	if len(landmarks) == 0 {
		return nil
	}

	sort.SliceStable(landmarks, func(i, j int) bool {
		return landmarks[i].Confidence > landmarks[j].Confidence
	})

	var result []Landmark
	seen := make(map[string]int)

	for _, lm := range landmarks {
		key := strings.ToLower(lm.Normalized)
		if idx, ok := seen[key]; ok {
			mergePosition(&result[idx], lm)
			continue
		}
		if idx := overlapIndex(lm, result); idx >= 0 {
			mergePosition(&result[idx], lm)
			continue
		}
		seen[key] = len(result)
		result = append(result, lm)
	}
	return result
}

func mergePosition(kept *Landmark, dropped Landmark) {
	if kept.Position == "" && dropped.Position != "" {
		kept.Position = dropped.Position
		kept.Keyword = dropped.Keyword
	}
}

func overlapIndex(lm Landmark, existing []Landmark) int {
	for i, other := range existing {
		if lm.Start < other.End && lm.End > other.Start {
			return i
		}
	}
	return -1
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
