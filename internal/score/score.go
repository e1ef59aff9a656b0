// Package score computes confidence for predicted delivery locations.
// Two scorers live here: a feature-weighted scorer over the prediction
// signals (landmark similarity, offset distance, delivery density) and
// a source-based scorer over the geocoding tier and extracted address
// components. Both return a numeric score, a categorical level, and a
// human-readable interpretation.
package score

import (
	"math"
	"sort"
)

// Feature weights for the prediction scorer. They sum to 1.0 so each
// component score reads as a percentage contribution.
var defaultWeights = map[string]float64{
	"nlp_confidence":      0.20,
	"landmark_similarity": 0.30,
	"geo_distance":        0.25,
	"density_score":       0.15,
	"component_count":     0.10,
}

// Confidence level thresholds.
const (
	levelHigh   = 0.80
	levelMedium = 0.60
	levelLow    = 0.40
)

// maxReasonableDistanceM sets the exponential decay rate of the
// distance component. At this distance the score is 1/e.
const maxReasonableDistanceM = 500.0

// DefaultDistanceM is assumed when no offset distance is known.
const DefaultDistanceM = 100.0

// Features are the raw prediction signals the scorer combines.
type Features struct {
	// NLPConfidence grades the extraction stage, 0-1.
	NLPConfidence float64

	// LandmarkScores are the similarity scores of all matched
	// landmarks.
	LandmarkScores []float64

	// DistanceM is the offset applied from the anchor landmark.
	// Negative means unknown and falls back to DefaultDistanceM.
	DistanceM float64

	// Extracted component counts.
	Directions      int
	Landmarks       int
	StreetNumbers   int
	BuildingNumbers int

	// DensityScore is the delivery density around the predicted point,
	// 0-1.
	DensityScore float64
}

// Result is a scored confidence with its breakdown.
type Result struct {
	Score          float64            `json:"score"`
	Level          string             `json:"level"`
	Components     map[string]float64 `json:"components"`
	Interpretation string             `json:"interpretation"`
}

// Scorer combines prediction features into one confidence value.
type Scorer struct {
	weights map[string]float64
}

// NewScorer creates a scorer. Nil weights use the defaults.
func NewScorer(weights map[string]float64) *Scorer {
	if len(weights) == 0 {
		weights = defaultWeights
	}
	return &Scorer{weights: weights}
}

// Score computes the weighted confidence for the features.
func (s *Scorer) Score(f Features) Result {
	components := map[string]float64{
		"nlp_confidence":      clamp01(f.NLPConfidence),
		"landmark_similarity": AggregateLandmarkScores(f.LandmarkScores),
		"geo_distance":        DistanceToConfidence(f.distanceOrDefault()),
		"density_score":       clamp01(f.DensityScore),
		"component_count":     componentCountScore(f.componentCount()),
	}

	score := clamp01(s.weightedSum(components))
	level := Level(score)

	return Result{
		Score:          score,
		Level:          level,
		Components:     components,
		Interpretation: interpret(level, components),
	}
}

func (f Features) distanceOrDefault() float64 {
	if f.DistanceM < 0 {
		return DefaultDistanceM
	}
	return f.DistanceM
}

func (f Features) componentCount() int {
	return f.Directions + f.Landmarks + f.StreetNumbers + f.BuildingNumbers
}

// weightedSum normalizes by the weights actually present so custom
// weight maps missing a component still produce sane scores.
func (s *Scorer) weightedSum(components map[string]float64) float64 {
	var total, weightSum, allWeights float64
	for key, weight := range s.weights {
		allWeights += weight
		if value, ok := components[key]; ok {
			total += value * weight
			weightSum += weight
		}
	}
	if weightSum == 0 {
		return 0.5
	}
	return total / weightSum * allWeights
}

// DistanceToConfidence converts an offset distance to a confidence via
// exponential decay: 0m is 1.0, 500m is about 0.37.
func DistanceToConfidence(distanceM float64) float64 {
	if distanceM <= 0 {
		return 1.0
	}
	return math.Exp(-distanceM / maxReasonableDistanceM)
}

// AggregateLandmarkScores folds similarity scores into one value. The
// best match carries 60%, the average of the rest 40%, so one strong
// match is not dragged down by weak secondary mentions.
func AggregateLandmarkScores(scores []float64) float64 {
	switch len(scores) {
	case 0:
		return 0.0
	case 1:
		return scores[0]
	}

	sorted := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var rest float64
	for _, s := range sorted[1:] {
		rest += s
	}
	rest /= float64(len(sorted) - 1)

	return 0.6*sorted[0] + 0.4*rest
}

// componentCountScore saturates as more address components appear.
func componentCountScore(count int) float64 {
	switch {
	case count == 0:
		return 0.0
	case count <= 2:
		return 0.3 + float64(count)*0.15
	case count <= 4:
		return 0.55 + float64(count-2)*0.15
	default:
		return math.Min(1.0, 0.85+float64(count-4)*0.05)
	}
}

// Level maps a score to its categorical label.
func Level(score float64) string {
	switch {
	case score >= levelHigh:
		return "HIGH"
	case score >= levelMedium:
		return "MEDIUM"
	case score >= levelLow:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

func interpret(level string, components map[string]float64) string {
	base := map[string]string{
		"HIGH":     "High confidence - reliable for direct delivery routing",
		"MEDIUM":   "Medium confidence - may require driver verification",
		"LOW":      "Low confidence - recommend manual review or customer callback",
		"VERY_LOW": "Very low confidence - insufficient data for reliable prediction",
	}[level]

	if components["landmark_similarity"] < 0.4 {
		base += ". Landmark matching was weak."
	}
	if components["nlp_confidence"] < 0.4 {
		base += ". Address parsing had issues."
	}
	if components["geo_distance"] < 0.4 {
		base += ". Predicted location far from anchor."
	}
	return base
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
