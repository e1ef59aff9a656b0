// Package geo provides the geodesic math shared by the geocoder and
// the location predictor: great-circle distance, destination-point
// offsets, and the national bounding box used to reject wild results.
package geo

import (
	"math"
)

// EarthRadiusM is Earth's mean radius in meters.
const EarthRadiusM = 6371000.0

// EarthRadiusKm is Earth's mean radius in kilometers.
const EarthRadiusKm = 6371.0

// India's approximate bounding box. Coarse on purpose - it only needs
// to catch geocoding results that are obviously not in the country.
const (
	IndiaMinLat = 6.0
	IndiaMaxLat = 36.0
	IndiaMinLng = 68.0
	IndiaMaxLng = 98.0
)

// Country centroid used as the last-resort geocoding fallback.
const (
	IndiaCentroidLat = 20.5937
	IndiaCentroidLng = 78.9629
)

// HaversineM returns the great-circle distance between two points in meters.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := radians(lat1)
	lat2Rad := radians(lat2)
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineM(lat1, lng1, lat2, lng2) / 1000.0
}

// Offset computes the destination coordinate reached by travelling
// distanceM meters from (lat, lng) along the given initial bearing
// (degrees clockwise from north). Uses the spherical direct formula.
func Offset(lat, lng, bearingDeg, distanceM float64) (float64, float64) {
	latRad := radians(lat)
	lngRad := radians(lng)
	bearingRad := radians(bearingDeg)

	angular := distanceM / EarthRadiusM

	newLatRad := math.Asin(
		math.Sin(latRad)*math.Cos(angular) +
			math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))

	newLngRad := lngRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(newLatRad))

	return degrees(newLatRad), degrees(newLngRad)
}

// WithinIndia reports whether the coordinate falls inside India's
// approximate bounding box.
func WithinIndia(lat, lng float64) bool {
	return lat >= IndiaMinLat && lat <= IndiaMaxLat &&
		lng >= IndiaMinLng && lng <= IndiaMaxLng
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
