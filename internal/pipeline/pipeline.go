// Package pipeline runs the end-to-end address resolution flow:
// normalize the raw text, extract landmark mentions and street
// components, match mentions against the gazetteer, predict delivery
// coordinates, and score the result. When no landmark anchors the
// prediction, the contextual geocoder supplies coordinates from
// pincode, city, or state context instead.
package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/addresspin/internal/extract"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/geocode"
	"github.com/addresspin/internal/match"
	"github.com/addresspin/internal/normalize"
	"github.com/addresspin/internal/predict"
	"github.com/addresspin/internal/score"
)

// DefaultNLPConfidence stands in for a learned extraction-quality
// estimate.
const DefaultNLPConfidence = 0.8

// chunkMatchThreshold gates the whole-text chunk fallback: a chunk
// must match clearly better than the regular threshold to be trusted.
const chunkMatchThreshold = 0.6

// Version identifies the pipeline revision in result metadata.
const Version = "1.0.0"

// Coordinates is the final predicted delivery point.
type Coordinates struct {
	Lat    float64       `json:"lat"`
	Lng    float64       `json:"lng"`
	Anchor *match.Result `json:"anchor_landmark,omitempty"`
	Method string        `json:"method"`
}

// Confidence is the condensed scoring outcome.
type Confidence struct {
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Interpretation string  `json:"interpretation"`
}

// Metadata carries processing information.
type Metadata struct {
	ProcessingTimeMs float64 `json:"processing_time_ms"`
	PipelineVersion  string  `json:"pipeline_version"`
}

// Result is the complete pipeline output for one address.
type Result struct {
	RawAddress           string             `json:"raw_address"`
	City                 string             `json:"city,omitempty"`
	StandardizedAddress  string             `json:"standardized_address"`
	Pincode              string             `json:"pincode,omitempty"`
	State                string             `json:"state,omitempty"`
	ExtractedLandmarks   []extract.Landmark `json:"extracted_landmarks"`
	Directions           []string           `json:"directions"`
	StreetInfo           extract.StreetInfo `json:"street_info"`
	MatchedLandmarks     []match.Result     `json:"matched_landmarks"`
	Geocode              geocode.Result     `json:"geocode"`
	PredictedCoordinates Coordinates        `json:"predicted_coordinates"`
	Confidence           Confidence         `json:"confidence"`
	Metadata             Metadata           `json:"metadata"`
}

// Request is one address to resolve. The optional overrides let the
// caller supply its own extraction-quality estimate and delivery
// density signal instead of the pipeline defaults.
type Request struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`

	NLPConfidence *float64 `json:"nlp_confidence,omitempty"`
	DensityScore  *float64 `json:"density_score,omitempty"`
}

// Pipeline orchestrates the resolution stages. Safe for concurrent
// use.
type Pipeline struct {
	normalizer   *normalize.Normalizer
	extractor    *extract.Extractor
	matcher      *match.Matcher
	geocoder     *geocode.Geocoder
	scorer       *score.Scorer
	sourceScorer *score.SourceScorer
	density      *geo.DensityIndex
	log          *zap.Logger

	predictMu sync.Mutex
	predictor *predict.Predictor
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(p *Pipeline) { p.normalizer = n }
}

// WithPredictor replaces the default predictor, e.g. with a seeded one
// for reproducible output.
func WithPredictor(pr *predict.Predictor) Option {
	return func(p *Pipeline) { p.predictor = pr }
}

// WithGeocoder replaces the default geocoder.
func WithGeocoder(g *geocode.Geocoder) Option {
	return func(p *Pipeline) { p.geocoder = g }
}

// WithDensityIndex wires in a delivery density index. Without one the
// density component uses a flat default.
func WithDensityIndex(d *geo.DensityIndex) Option {
	return func(p *Pipeline) { p.density = d }
}

// New creates a pipeline over the given matcher. The matcher carries
// the gazetteer; everything else has workable defaults.
func New(matcher *match.Matcher, log *zap.Logger, opts ...Option) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pipeline{
		normalizer:   normalize.New(),
		matcher:      matcher,
		geocoder:     geocode.New(log),
		predictor:    predict.New(),
		scorer:       score.NewScorer(nil),
		sourceScorer: score.NewSourceScorer(nil),
		log:          log,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.extractor = extract.New(func() []string {
		return p.matcher.Vocabulary()
	})
	return p
}

// Process resolves one raw address.
func (p *Pipeline) Process(ctx context.Context, req Request) Result {
	start := time.Now()

	normalized := p.normalizer.Normalize(req.Address)
	city := req.City
	if city == "" {
		city = normalized.City
	}

	landmarks := p.extractor.Extract(normalized.Text)
	directions := extract.Directions(normalized.Text)
	streetInfo := extract.Street(normalized.Text)

	matched := p.matchLandmarks(landmarks, normalized.Text, city)

	geoResult := p.geocoder.Geocode(ctx, normalized.Text, normalized.Pincode, city, normalized.State)

	prediction := p.predict(matched, predict.Components{
		Directions:    directions,
		StreetInfo:    streetInfo,
		LandmarkCount: len(landmarks),
	})

	coordinates, confidence := p.finish(req, normalized, landmarks, directions, streetInfo, matched, geoResult, prediction)

	result := Result{
		RawAddress:           req.Address,
		City:                 city,
		StandardizedAddress:  normalized.Text,
		Pincode:              normalized.Pincode,
		State:                normalized.State,
		ExtractedLandmarks:   landmarks,
		Directions:           directions,
		StreetInfo:           streetInfo,
		MatchedLandmarks:     matched,
		Geocode:              geoResult,
		PredictedCoordinates: coordinates,
		Confidence:           confidence,
		Metadata: Metadata{
			ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
			PipelineVersion:  Version,
		},
	}

	p.log.Debug("address processed",
		zap.String("city", city),
		zap.Int("landmarks", len(landmarks)),
		zap.Int("matched", len(matched)),
		zap.String("method", coordinates.Method),
		zap.Float64("confidence", confidence.Score),
		zap.Duration("took", time.Since(start)))

	return result
}

// ProcessBatch resolves a list of addresses. An empty per-request city
// falls back to defaultCity.
func (p *Pipeline) ProcessBatch(ctx context.Context, reqs []Request, defaultCity string) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		if req.City == "" {
			req.City = defaultCity
		}
		results = append(results, p.Process(ctx, req))
	}
	return results
}

// matchLandmarks resolves each extracted mention against the
// gazetteer. When nothing was extracted, two-word chunks of the whole
// normalized text are tried so addresses like "shiv mandir road"
// still anchor.
func (p *Pipeline) matchLandmarks(landmarks []extract.Landmark, text, city string) []match.Result {
	var matched []match.Result
	for _, lm := range landmarks {
		if best := p.matcher.Best(lm.Normalized, city); best != nil {
			matched = append(matched, *best)
		}
	}
	if len(matched) > 0 || text == "" {
		return matched
	}

	words := splitWords(text)
	for i := 0; i+1 < len(words); i++ {
		chunk := words[i] + " " + words[i+1]
		if best := p.matcher.Best(chunk, city); best != nil && best.Similarity > chunkMatchThreshold {
			matched = append(matched, *best)
			break
		}
	}
	return matched
}

// predict serializes access to the predictor's random source.
func (p *Pipeline) predict(matched []match.Result, comps predict.Components) predict.Result {
	p.predictMu.Lock()
	defer p.predictMu.Unlock()
	return p.predictor.Predict(matched, comps)
}

// finish selects the coordinates and scores them. A landmark-anchored
// prediction keeps the predicted point and is scored on prediction
// features, density included. Without an anchor, the geocoder's tier
// result becomes the coordinates and the source scorer grades it.
func (p *Pipeline) finish(
	req Request,
	normalized normalize.Result,
	landmarks []extract.Landmark,
	directions []string,
	streetInfo extract.StreetInfo,
	matched []match.Result,
	geoResult geocode.Result,
	prediction predict.Result,
) (Coordinates, Confidence) {
	if prediction.Method == predict.MethodFallback {
		sourceScore := p.sourceScorer.Score(normalized, landmarks, geoResult)
		return Coordinates{
				Lat:    geoResult.Lat,
				Lng:    geoResult.Lng,
				Method: predict.MethodFallback,
			}, Confidence{
				Score:          sourceScore.Score,
				Level:          sourceScore.Level,
				Interpretation: sourceScore.Interpretation,
			}
	}

	similarities := make([]float64, 0, len(matched))
	for _, m := range matched {
		similarities = append(similarities, m.Similarity)
	}

	density := geo.DefaultDensityScore
	switch {
	case req.DensityScore != nil:
		density = *req.DensityScore
	case p.density != nil:
		density = p.density.Score(prediction.Lat, prediction.Lng)
	}

	nlpConfidence := DefaultNLPConfidence
	if req.NLPConfidence != nil {
		nlpConfidence = *req.NLPConfidence
	}

	featureScore := p.scorer.Score(score.Features{
		NLPConfidence:   nlpConfidence,
		LandmarkScores:  similarities,
		DistanceM:       prediction.OffsetAppliedM,
		Directions:      len(directions),
		Landmarks:       len(landmarks),
		StreetNumbers:   len(streetInfo.StreetNumbers),
		BuildingNumbers: len(streetInfo.BuildingNumbers),
		DensityScore:    density,
	})

	return Coordinates{
			Lat:    prediction.Lat,
			Lng:    prediction.Lng,
			Anchor: prediction.Anchor,
			Method: prediction.Method,
		}, Confidence{
			Score:          featureScore.Score,
			Level:          featureScore.Level,
			Interpretation: featureScore.Interpretation,
		}
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	})
}
