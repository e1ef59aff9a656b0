package geo

import (
	"math"
	"sync"

	h3 "github.com/uber/h3-go/v4"
)

// DefaultDensityScore is used when no delivery history is loaded for
// the area in question.
const DefaultDensityScore = 0.7

// DefaultDensityResolution is the H3 resolution for the delivery
// density index. Resolution 8 cells average ~0.7 km2, roughly one
// urban neighbourhood.
const DefaultDensityResolution = 8

// DensityIndex aggregates historical delivery points into H3 cells and
// scores how well-covered a coordinate is. Scores are log-damped so a
// handful of deliveries already counts as meaningful coverage.
type DensityIndex struct {
	mu         sync.RWMutex
	resolution int
	counts     map[h3.Cell]int
	maxCount   int
}

// NewDensityIndex creates an empty index at the given H3 resolution.
// Resolutions outside [0,15] fall back to DefaultDensityResolution.
func NewDensityIndex(resolution int) *DensityIndex {
	if resolution < 0 || resolution > 15 {
		resolution = DefaultDensityResolution
	}
	return &DensityIndex{
		resolution: resolution,
		counts:     make(map[h3.Cell]int),
	}
}

// Add records one delivery at the given coordinate.
func (d *DensityIndex) Add(lat, lng float64) error {
	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lng), d.resolution)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.counts[cell]++
	if d.counts[cell] > d.maxCount {
		d.maxCount = d.counts[cell]
	}
	d.mu.Unlock()
	return nil
}

// Score returns a density score in [0,1] for the coordinate. An empty
// index returns DefaultDensityScore so downstream confidence math stays
// neutral when no history has been loaded.
func (d *DensityIndex) Score(lat, lng float64) float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.maxCount == 0 {
		return DefaultDensityScore
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lng), d.resolution)
	if err != nil {
		return DefaultDensityScore
	}

	count := d.counts[cell]
	if count == 0 {
		return 0.0
	}

	return math.Log1p(float64(count)) / math.Log1p(float64(d.maxCount))
}

// Size returns the number of distinct cells with at least one delivery.
func (d *DensityIndex) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.counts)
}
