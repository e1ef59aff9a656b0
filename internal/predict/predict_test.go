package predict

import (
	"testing"

	"github.com/addresspin/internal/extract"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/match"
)

func anchorLandmark() []match.Result {
	return []match.Result{{
		Input:       "shiv mandir",
		MatchedName: "Shiv Mandir",
		Lat:         19.1150,
		Lng:         72.8710,
		Similarity:  0.91,
		City:        "mumbai",
	}}
}

func TestPredictNearStaysClose(t *testing.T) {
	p := New(WithSeed(42))

	result := p.Predict(anchorLandmark(), Components{Directions: []string{"near"}})

	if result.Method != MethodLandmarkOffset {
		t.Errorf("method = %q, want %q", result.Method, MethodLandmarkOffset)
	}
	if result.DirectionUsed != "near" {
		t.Errorf("direction = %q, want near", result.DirectionUsed)
	}

	dist := geo.HaversineM(19.1150, 72.8710, result.Lat, result.Lng)
	if dist < 45 || dist > 105 {
		t.Errorf("offset distance = %vm, want within [50, 100] range", dist)
	}
	if result.OffsetAppliedM < 50 || result.OffsetAppliedM > 100 {
		t.Errorf("offset applied = %v, want in [50, 100]", result.OffsetAppliedM)
	}
}

func TestPredictDirectionRanges(t *testing.T) {
	tests := []struct {
		direction string
		min, max  float64
	}{
		{"near", 50, 100},
		{"behind", 30, 80},
		{"opposite", 20, 50},
		{"beside", 10, 40},
		{"after", 100, 200},
		{"next to", 5, 30},
		{"in front of", 15, 50},
	}

	for _, tt := range tests {
		p := New(WithSeed(7))
		for i := 0; i < 20; i++ {
			result := p.Predict(anchorLandmark(), Components{Directions: []string{tt.direction}})
			if result.OffsetAppliedM < tt.min || result.OffsetAppliedM > tt.max {
				t.Errorf("%q offset = %v, want in [%v, %v]", tt.direction, result.OffsetAppliedM, tt.min, tt.max)
				break
			}
		}
	}
}

func TestPredictLaneNumberExtendsOffset(t *testing.T) {
	p := New(WithSeed(1))

	comps := Components{
		Directions: []string{"behind"},
		StreetInfo: extract.StreetInfo{
			StreetNumbers: []extract.StreetNumber{{Number: "4", Type: "lane"}},
		},
	}
	result := p.Predict(anchorLandmark(), comps)

	// behind is 30-80m plus 4 lanes at 15m each.
	if result.OffsetAppliedM < 30+60 || result.OffsetAppliedM > 80+60 {
		t.Errorf("offset with lane 4 = %v, want in [90, 140]", result.OffsetAppliedM)
	}
}

func TestPredictNoDirection(t *testing.T) {
	p := New(WithSeed(3))

	result := p.Predict(anchorLandmark(), Components{})
	if result.Method != MethodLandmarkDirect {
		t.Errorf("method = %q, want %q", result.Method, MethodLandmarkDirect)
	}
	if result.OffsetAppliedM != DefaultOffsetM {
		t.Errorf("offset = %v, want default %v", result.OffsetAppliedM, DefaultOffsetM)
	}
}

func TestPredictFallback(t *testing.T) {
	p := New(WithSeed(5))

	result := p.Predict(nil, Components{Directions: []string{"near"}})
	if result.Method != MethodFallback {
		t.Errorf("method = %q, want %q", result.Method, MethodFallback)
	}
	if result.Lat != 0 || result.Lng != 0 || result.Confidence != 0 {
		t.Errorf("fallback = %+v, want zero coordinates and confidence", result)
	}
}

func TestPredictSelectsBestAnchor(t *testing.T) {
	p := New(WithSeed(9))

	matched := []match.Result{
		{MatchedName: "Weak Match", Lat: 10, Lng: 10, Similarity: 0.55},
		{MatchedName: "Strong Match", Lat: 19.1150, Lng: 72.8710, Similarity: 0.92},
	}
	result := p.Predict(matched, Components{})
	if result.Anchor == nil || result.Anchor.MatchedName != "Strong Match" {
		t.Errorf("anchor = %+v, want Strong Match", result.Anchor)
	}
}

func TestPredictConfidence(t *testing.T) {
	p := New(WithSeed(11))

	comps := Components{
		Directions: []string{"opposite"},
		StreetInfo: extract.StreetInfo{
			StreetNumbers:   []extract.StreetNumber{{Number: "2", Type: "lane"}},
			BuildingNumbers: []extract.BuildingNumber{{Number: "203"}},
		},
		LandmarkCount: 2,
	}
	result := p.Predict(anchorLandmark(), comps)

	// 0.91 anchor plus all bonuses hits the cap.
	if result.Confidence != maxConfidence {
		t.Errorf("confidence = %v, want capped at %v", result.Confidence, maxConfidence)
	}

	bare := p.Predict(anchorLandmark(), Components{})
	if bare.Confidence != 0.91 {
		t.Errorf("bare confidence = %v, want anchor similarity 0.91", bare.Confidence)
	}
}

func TestPredictOppositeWithinHundredMeters(t *testing.T) {
	p := New(WithSeed(42))

	result := p.Predict(anchorLandmark(), Components{
		Directions:    []string{"opposite"},
		LandmarkCount: 1,
	})

	dist := geo.HaversineM(19.1150, 72.8710, result.Lat, result.Lng)
	if dist > 100 {
		t.Errorf("opposite offset = %vm, want within 100m of anchor", dist)
	}
	if result.Confidence < 0.87 {
		t.Errorf("confidence = %v, want >= 0.87", result.Confidence)
	}
}
