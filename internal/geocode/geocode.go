// Package geocode estimates coordinates for Indian addresses from a
// hierarchy of signals: pincode centroid, pincode prefix, city
// centroid, state centroid, an optional external API, and finally the
// country centroid. Every result carries an uncertainty radius so
// downstream scoring can tell a pincode hit from a state guess.
package geocode

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/normalize"
)

// Result is a geocoding outcome with provenance and uncertainty.
type Result struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Source        string  `json:"source"`
	Precision     string  `json:"precision"`
	UncertaintyKm float64 `json:"uncertainty_km"`
}

// Uncertainty radii per tier, in kilometers.
const (
	pincodeUncertaintyKm = 5.0
	prefixUncertaintyKm  = 20.0
	cityUncertaintyKm    = 15.0
	stateUncertaintyKm   = 150.0
	countryUncertaintyKm = 1500.0
)

// Client geocodes free-text queries against an external service.
type Client interface {
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Geocoder resolves addresses tier by tier, preferring local lookups
// over API calls.
type Geocoder struct {
	pincodes map[string]Coord
	external Client
	log      *zap.Logger
}

// Option configures a Geocoder.
type Option func(*Geocoder)

// WithExternal enables the external API tier.
func WithExternal(client Client) Option {
	return func(g *Geocoder) { g.external = client }
}

// WithPincodeCentroids replaces the built-in pincode centroid table.
func WithPincodeCentroids(centroids map[string]Coord) Option {
	return func(g *Geocoder) {
		if len(centroids) > 0 {
			g.pincodes = centroids
		}
	}
}

// New creates a geocoder.
func New(log *zap.Logger, opts ...Option) *Geocoder {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Geocoder{
		pincodes: DefaultPincodeCentroids,
		log:      log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Geocode resolves the address using the most precise signal
// available. Pincode, city, and state hints take priority over
// re-detecting them in the text. It always returns a result; when
// nothing matches, the country centroid with a very large uncertainty.
func (g *Geocoder) Geocode(ctx context.Context, text, pincode, city, state string) Result {
	// Hints may arrive hyphenated or spaced ("400-069"); the centroid
	// table is keyed by plain six-digit codes.
	if cleaned := normalize.ExtractPincode(pincode); cleaned != "" {
		if result, ok := g.byPincode(cleaned); ok {
			return result
		}
	}

	if city == "" {
		city = cityFromText(text)
	}
	if result, ok := g.byCity(city); ok {
		return result
	}

	if state == "" {
		state = normalize.DetectState(text)
	}
	if result, ok := g.byState(state); ok {
		return result
	}

	if g.external != nil {
		if result, ok := g.byExternal(ctx, text); ok {
			return result
		}
	}

	return CountryFallback()
}

// CountryFallback is the last-resort result at the centroid of India.
func CountryFallback() Result {
	return Result{
		Lat:           geo.IndiaCentroidLat,
		Lng:           geo.IndiaCentroidLng,
		Source:        "country_fallback",
		Precision:     "country",
		UncertaintyKm: countryUncertaintyKm,
	}
}

func (g *Geocoder) byPincode(pincode string) (Result, bool) {
	if coord, ok := g.pincodes[pincode]; ok {
		return Result{
			Lat:           coord.Lat,
			Lng:           coord.Lng,
			Source:        "pincode",
			Precision:     "locality",
			UncertaintyKm: pincodeUncertaintyKm,
		}, true
	}

	// The first three digits name a sorting district, so any known
	// pincode sharing them gives a rough regional position. Keys are
	// sorted to keep the pick stable across runs.
	prefix := pincode[:3]
	var candidates []string
	for pc := range g.pincodes {
		if strings.HasPrefix(pc, prefix) {
			candidates = append(candidates, pc)
		}
	}
	if len(candidates) == 0 {
		return Result{}, false
	}
	sort.Strings(candidates)

	coord := g.pincodes[candidates[0]]
	return Result{
		Lat:           coord.Lat,
		Lng:           coord.Lng,
		Source:        "pincode_prefix",
		Precision:     "city",
		UncertaintyKm: prefixUncertaintyKm,
	}, true
}

func (g *Geocoder) byCity(city string) (Result, bool) {
	coord, ok := MajorCityCoords[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return Result{}, false
	}
	return Result{
		Lat:           coord.Lat,
		Lng:           coord.Lng,
		Source:        "city",
		Precision:     "city",
		UncertaintyKm: cityUncertaintyKm,
	}, true
}

func (g *Geocoder) byState(state string) (Result, bool) {
	coord, ok := StateCentroids[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return Result{}, false
	}
	return Result{
		Lat:           coord.Lat,
		Lng:           coord.Lng,
		Source:        "state",
		Precision:     "state",
		UncertaintyKm: stateUncertaintyKm,
	}, true
}

func (g *Geocoder) byExternal(ctx context.Context, text string) (Result, bool) {
	result, err := g.external.Geocode(ctx, text)
	if err != nil {
		g.log.Warn("external geocoding failed", zap.Error(err))
		return Result{}, false
	}
	if result == nil {
		return Result{}, false
	}
	if !geo.WithinIndia(result.Lat, result.Lng) {
		g.log.Debug("external result outside india discarded",
			zap.Float64("lat", result.Lat),
			zap.Float64("lng", result.Lng))
		return Result{}, false
	}
	return *result, true
}

func cityFromText(text string) string {
	lower := strings.ToLower(text)
	for city := range MajorCityCoords {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}
