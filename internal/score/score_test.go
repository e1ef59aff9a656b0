package score

import (
	"math"
	"strings"
	"testing"
)

func TestDistanceToConfidence(t *testing.T) {
	tests := []struct {
		distanceM float64
		want      float64
	}{
		{0, 1.0},
		{-5, 1.0},
		{500, math.Exp(-1)},
		{1000, math.Exp(-2)},
	}

	for _, tt := range tests {
		if got := DistanceToConfidence(tt.distanceM); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistanceToConfidence(%v) = %v, want %v", tt.distanceM, got, tt.want)
		}
	}

	if near, far := DistanceToConfidence(100), DistanceToConfidence(300); near <= far {
		t.Errorf("confidence not decreasing with distance: 100m=%v 300m=%v", near, far)
	}
}

func TestAggregateLandmarkScores(t *testing.T) {
	if got := AggregateLandmarkScores(nil); got != 0.0 {
		t.Errorf("empty aggregate = %v, want 0", got)
	}
	if got := AggregateLandmarkScores([]float64{0.8}); got != 0.8 {
		t.Errorf("single aggregate = %v, want 0.8", got)
	}

	// Best 0.9 at 60%, mean of the rest 0.5 at 40%.
	got := AggregateLandmarkScores([]float64{0.4, 0.9, 0.6})
	want := 0.6*0.9 + 0.4*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("aggregate = %v, want %v", got, want)
	}
}

func TestComponentCountScore(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0.0},
		{1, 0.45},
		{2, 0.6},
		{3, 0.7},
		{4, 0.85},
		{5, 0.9},
		{10, 1.0},
	}

	for _, tt := range tests {
		if got := componentCountScore(tt.count); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("componentCountScore(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestScorerHighConfidence(t *testing.T) {
	s := NewScorer(nil)

	result := s.Score(Features{
		NLPConfidence:  0.92,
		LandmarkScores: []float64{0.89, 0.78},
		DistanceM:      50,
		Directions:     1,
		Landmarks:      1,
		StreetNumbers:  1,
		DensityScore:   0.85,
	})

	if result.Level != "HIGH" {
		t.Errorf("level = %q, want HIGH (score %v)", result.Level, result.Score)
	}
	if result.Score < 0.80 || result.Score > 0.90 {
		t.Errorf("score = %v, want around 0.86", result.Score)
	}
}

func TestScorerLowConfidence(t *testing.T) {
	s := NewScorer(nil)

	result := s.Score(Features{
		NLPConfidence:  0.50,
		LandmarkScores: []float64{0.40},
		DistanceM:      400,
		DensityScore:   0.30,
	})

	if result.Level != "LOW" && result.Level != "VERY_LOW" {
		t.Errorf("level = %q, want LOW or VERY_LOW (score %v)", result.Level, result.Score)
	}
	if result.Interpretation == "" {
		t.Error("empty interpretation")
	}
}

func TestScorerBounds(t *testing.T) {
	s := NewScorer(nil)

	extremes := []Features{
		{},
		{NLPConfidence: 5, LandmarkScores: []float64{1, 1, 1}, DensityScore: 5,
			Directions: 10, Landmarks: 10, StreetNumbers: 10, BuildingNumbers: 10},
		{NLPConfidence: -1, DistanceM: 1e9, DensityScore: -1},
	}

	for _, f := range extremes {
		result := s.Score(f)
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("score %v out of [0, 1] for features %+v", result.Score, f)
		}
	}
}

func TestScorerUnknownDistanceDefaults(t *testing.T) {
	s := NewScorer(nil)

	unknown := s.Score(Features{NLPConfidence: 0.8, DistanceM: -1})
	known := s.Score(Features{NLPConfidence: 0.8, DistanceM: DefaultDistanceM})
	if unknown.Score != known.Score {
		t.Errorf("unknown distance score %v != default distance score %v", unknown.Score, known.Score)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "HIGH"},
		{0.80, "HIGH"},
		{0.79, "MEDIUM"},
		{0.60, "MEDIUM"},
		{0.59, "LOW"},
		{0.40, "LOW"},
		{0.39, "VERY_LOW"},
	}

	for _, tt := range tests {
		if got := Level(tt.score); got != tt.want {
			t.Errorf("Level(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestInterpretationFlagsWeakComponents(t *testing.T) {
	s := NewScorer(nil)

	result := s.Score(Features{
		NLPConfidence: 0.9,
		DistanceM:     50,
		DensityScore:  0.7,
	})
	if want := "Landmark matching was weak"; !strings.Contains(result.Interpretation, want) {
		t.Errorf("interpretation %q missing %q", result.Interpretation, want)
	}
}
