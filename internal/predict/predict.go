// Package predict turns a matched anchor landmark plus relative
// direction words into final delivery coordinates. The logic is
// rule-based spatial offsetting: each direction word maps to a bearing
// mode and a distance range, lane numbers push the point further out.
package predict

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/addresspin/internal/extract"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/match"
)

// Prediction methods.
const (
	MethodLandmarkOffset = "landmark_offset"
	MethodLandmarkDirect = "landmark_direct"
	MethodFallback       = "fallback"
)

// LaneOffsetMultiplier is the extra distance per lane number, in
// meters. Lane 4 sits further from the landmark than lane 1.
const LaneOffsetMultiplier = 15.0

// DefaultOffsetM is used when no direction word constrains the offset.
const DefaultOffsetM = 75.0

// maxConfidence caps prediction confidence since a rule-based offset
// is never certain.
const maxConfidence = 0.95

type bearingMode int

const (
	bearingRandom bearingMode = iota
	bearingOpposite
	bearingPerpendicular
	bearingForward
	bearingBackward
	bearingFixed
)

type directionConfig struct {
	minOffsetM  float64
	maxOffsetM  float64
	mode        bearingMode
	baseBearing float64
}

// directionConfigs maps direction words to offset behavior. Both the
// canonical relations the extractor emits and the raw keyword variants
// are listed so either form resolves.
var directionConfigs = map[string]directionConfig{
	"near":        {50, 100, bearingRandom, 0},
	"behind":      {30, 80, bearingOpposite, 180},
	"opposite":    {20, 50, bearingOpposite, 180},
	"beside":      {10, 40, bearingPerpendicular, 90},
	"adjacent":    {10, 40, bearingPerpendicular, 90},
	"after":       {100, 200, bearingForward, 0},
	"past":        {100, 200, bearingForward, 0},
	"before":      {100, 200, bearingBackward, 180},
	"next to":     {5, 30, bearingRandom, 0},
	"in front of": {15, 50, bearingFixed, 0},
	"across from": {30, 80, bearingOpposite, 180},
}

// Components carries the address context the predictor uses alongside
// the matched landmarks.
type Components struct {
	// Directions are the positional relations found in the address, in
	// appearance order.
	Directions []string

	// StreetInfo holds extracted lane and building numbers.
	StreetInfo extract.StreetInfo

	// LandmarkCount is how many landmark mentions were extracted,
	// matched or not.
	LandmarkCount int
}

// Result is a predicted delivery point with provenance.
type Result struct {
	Lat               float64       `json:"lat"`
	Lng               float64       `json:"lng"`
	Confidence        float64       `json:"confidence"`
	Anchor            *match.Result `json:"anchor_landmark,omitempty"`
	DirectionUsed     string        `json:"direction_used,omitempty"`
	OffsetAppliedM    float64       `json:"offset_applied_m"`
	BearingAppliedDeg float64       `json:"bearing_applied_deg"`
	Method            string        `json:"method"`
}

// Predictor computes rule-based coordinate offsets. Not safe for
// concurrent use; create one per goroutine or guard externally.
type Predictor struct {
	defaultOffsetM float64
	laneMultiplier float64
	rng            *rand.Rand
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithSeed fixes the random source for reproducible predictions.
func WithSeed(seed int64) Option {
	return func(p *Predictor) { p.rng = rand.New(rand.NewSource(seed)) }
}

// WithDefaultOffset overrides the offset used without a direction word.
func WithDefaultOffset(meters float64) Option {
	return func(p *Predictor) {
		if meters > 0 {
			p.defaultOffsetM = meters
		}
	}
}

// New creates a predictor.
func New(opts ...Option) *Predictor {
	p := &Predictor{
		defaultOffsetM: DefaultOffsetM,
		laneMultiplier: LaneOffsetMultiplier,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict offsets the best-matched landmark by the primary direction
// word. Without any usable anchor it returns a zero-confidence
// fallback.
func (p *Predictor) Predict(matched []match.Result, comps Components) Result {
	anchor := selectAnchor(matched)
	if anchor == nil {
		return Result{Method: MethodFallback}
	}

	direction := primaryDirection(comps.Directions)
	bearing, distance := p.offsetFor(direction, comps)

	lat, lng := geo.Offset(anchor.Lat, anchor.Lng, bearing, distance)

	method := MethodLandmarkDirect
	if direction != "" {
		method = MethodLandmarkOffset
	}

	return Result{
		Lat:               lat,
		Lng:               lng,
		Confidence:        p.confidence(anchor, direction, comps),
		Anchor:            anchor,
		DirectionUsed:     direction,
		OffsetAppliedM:    distance,
		BearingAppliedDeg: bearing,
		Method:            method,
	}
}

// selectAnchor picks the matched landmark with the highest similarity.
func selectAnchor(matched []match.Result) *match.Result {
	var best *match.Result
	for i := range matched {
		if matched[i].Similarity <= 0 {
			continue
		}
		if best == nil || matched[i].Similarity > best.Similarity {
			best = &matched[i]
		}
	}
	return best
}

// primaryDirection returns the first direction word that has an offset
// config.
func primaryDirection(directions []string) string {
	for _, d := range directions {
		if _, ok := directionConfigs[strings.ToLower(d)]; ok {
			return strings.ToLower(d)
		}
	}
	return ""
}

func (p *Predictor) offsetFor(direction string, comps Components) (bearing, distance float64) {
	laneOffset := 0.0
	if numbers := comps.StreetInfo.StreetNumbers; len(numbers) > 0 {
		if lane, err := strconv.Atoi(numbers[0].Number); err == nil {
			laneOffset = float64(lane) * p.laneMultiplier
		}
	}

	config, ok := directionConfigs[direction]
	if !ok {
		return p.rng.Float64() * 360, p.defaultOffsetM + laneOffset
	}

	distance = config.minOffsetM + p.rng.Float64()*(config.maxOffsetM-config.minOffsetM) + laneOffset

	switch config.mode {
	case bearingRandom:
		bearing = p.rng.Float64() * 360
	case bearingOpposite, bearingBackward:
		bearing = config.baseBearing + (p.rng.Float64()*60 - 30)
	case bearingPerpendicular:
		bearing = config.baseBearing
		if p.rng.Float64() > 0.5 {
			bearing = 360 - bearing
		}
	case bearingForward:
		bearing = config.baseBearing + (p.rng.Float64()*40 - 20)
	default:
		bearing = config.baseBearing
	}

	bearing = bearing - 360*float64(int(bearing/360))
	if bearing < 0 {
		bearing += 360
	}
	return bearing, distance
}

// confidence grades the prediction from the anchor similarity plus
// small bonuses for corroborating signals.
func (p *Predictor) confidence(anchor *match.Result, direction string, comps Components) float64 {
	confidence := anchor.Similarity
	if direction != "" {
		confidence += 0.10
	}
	if len(comps.StreetInfo.StreetNumbers) > 0 {
		confidence += 0.05
	}
	if len(comps.StreetInfo.BuildingNumbers) > 0 {
		confidence += 0.05
	}
	if comps.LandmarkCount >= 2 {
		confidence += 0.05
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}
