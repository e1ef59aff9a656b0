package score

import (
	"regexp"
	"strings"

	"github.com/addresspin/internal/extract"
	"github.com/addresspin/internal/geocode"
	"github.com/addresspin/internal/normalize"
)

// sourceBaseScores grade the geocoding tier before other factors.
// Pincodes are very reliable in India, the country centroid is not.
var sourceBaseScores = map[string]float64{
	"pincode":          0.85,
	"pincode_prefix":   0.65,
	"city":             0.55,
	"state":            0.30,
	"external":         0.70,
	"country_fallback": 0.10,
}

// sourceComponentWeights scale each component's pull on the base
// score.
var sourceComponentWeights = map[string]float64{
	"pincode":     0.35,
	"city":        0.20,
	"state":       0.15,
	"landmarks":   0.15,
	"consistency": 0.15,
}

// Bonus and penalty adjustments.
const (
	multipleLandmarksBonus = 0.05
	buildingNumberBonus    = 0.05
	countryFallbackPenalty = -0.20
)

var buildingNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d+[/\-]?\d*\s*,`),
	regexp.MustCompile(`\bhno?\s*\.?\s*\d+`),
	regexp.MustCompile(`\bflat\s*(?:no\.?)?\s*\d+`),
	regexp.MustCompile(`\bplot\s*(?:no\.?)?\s*\d+`),
	regexp.MustCompile(`\bblock\s*[a-z]?\s*\-?\s*\d+`),
}

// SourceResult is a scored geocoding outcome with its breakdown.
type SourceResult struct {
	Score          float64            `json:"score"`
	Level          string             `json:"level"`
	Components     map[string]float64 `json:"components"`
	Adjustments    map[string]float64 `json:"adjustments"`
	Interpretation string             `json:"interpretation"`
}

// SourceScorer grades geocoding results by how the coordinates were
// obtained and how complete and consistent the extracted address
// components are.
type SourceScorer struct {
	weights map[string]float64
}

// NewSourceScorer creates a scorer. Nil weights use the defaults.
func NewSourceScorer(weights map[string]float64) *SourceScorer {
	if len(weights) == 0 {
		weights = sourceComponentWeights
	}
	return &SourceScorer{weights: weights}
}

// Score evaluates a geocoding result. The base score comes from the
// tier that produced the coordinates; each component pulls it up or
// down around a neutral 0.5, then flat adjustments apply. The result
// is clamped to [0.05, 0.99] since neither certainty nor total
// ignorance is honest.
func (s *SourceScorer) Score(norm normalize.Result, landmarks []extract.Landmark, geoResult geocode.Result) SourceResult {
	base, ok := sourceBaseScores[geoResult.Source]
	if !ok {
		base = 0.1
	}

	components := map[string]float64{
		"base":        base,
		"pincode":     scorePincode(norm.Pincode),
		"city":        scoreCity(norm.City),
		"state":       scoreState(norm.State),
		"landmarks":   scoreLandmarks(landmarks),
		"consistency": scoreConsistency(norm.Pincode, norm.City),
	}

	final := base
	for component, weight := range s.weights {
		if value, ok := components[component]; ok {
			final += weight * (value - 0.5) * 2
		}
	}

	adjustments := make(map[string]float64)
	if len(landmarks) >= 2 {
		adjustments["multiple_landmarks"] = multipleLandmarksBonus
	}
	if hasBuildingNumber(norm.Original) {
		adjustments["has_building_number"] = buildingNumberBonus
	}
	if geoResult.Source == "country_fallback" {
		adjustments["fallback_penalty"] = countryFallbackPenalty
	}
	for _, adj := range adjustments {
		final += adj
	}

	if final < 0.05 {
		final = 0.05
	}
	if final > 0.99 {
		final = 0.99
	}

	level := sourceLevel(final)
	return SourceResult{
		Score:          final,
		Level:          level,
		Components:     components,
		Adjustments:    adjustments,
		Interpretation: interpretSource(final, geoResult.Source),
	}
}

func scorePincode(pincode string) float64 {
	if pincode == "" {
		return 0.3
	}
	if !normalize.ValidPincode(pincode) {
		return 0.4
	}
	// A leading 9 marks army postal addresses, slightly less useful
	// for locating civilians.
	if pincode[0] == '9' {
		return 0.8
	}
	return 0.95
}

func scoreCity(city string) float64 {
	if city == "" {
		return 0.4
	}
	lower := strings.ToLower(city)
	for _, known := range normalize.MajorCities {
		if lower == known {
			return 0.9
		}
	}
	return 0.7
}

func scoreState(state string) float64 {
	if state == "" {
		return 0.4
	}
	if len(state) == 2 {
		return 0.85
	}
	return 0.6
}

func scoreLandmarks(landmarks []extract.Landmark) float64 {
	if len(landmarks) == 0 {
		return 0.4
	}

	var base float64
	switch {
	case len(landmarks) >= 3:
		base = 0.9
	case len(landmarks) == 2:
		base = 0.8
	default:
		base = 0.7
	}

	var sum float64
	for _, lm := range landmarks {
		sum += lm.Confidence
	}
	avg := sum / float64(len(landmarks))

	return base * (0.7 + 0.3*avg)
}

// scoreConsistency checks the pincode region against the city. The
// first pincode digit names a postal region with a known set of major
// cities.
func scoreConsistency(pincode, city string) float64 {
	if pincode == "" || city == "" {
		return 0.5
	}

	if normalize.PincodeCityConsistent(pincode, city) {
		return 0.95
	}

	// A city absent from every region list is unknown, not
	// conflicting.
	lower := strings.ToLower(city)
	for _, cities := range normalize.RegionCities {
		for _, known := range cities {
			if lower == known {
				return 0.3
			}
		}
	}
	return 0.5
}

func hasBuildingNumber(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range buildingNumberPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// sourceLevel uses stricter thresholds than Level since geocode-tier
// results carry more locational uncertainty, but reports the same enum
// so confidence.level means one thing everywhere.
func sourceLevel(score float64) string {
	switch {
	case score >= 0.85:
		return "HIGH"
	case score >= 0.65:
		return "MEDIUM"
	case score >= 0.40:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

func interpretSource(score float64, source string) string {
	switch {
	case score >= 0.85:
		return "High confidence - coordinates are likely accurate within a few kilometers"
	case score >= 0.65:
		return "Medium confidence - coordinates based on " + source + ", may be 5-15km off"
	case score >= 0.40:
		return "Low confidence - limited data available, coordinates are approximate"
	default:
		return "Very low confidence - insufficient data, coordinates are rough estimates only"
	}
}
