package valueobject

import (
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000.0

// GeoPoint is a value object representing a WGS84 coordinate pair.
// It is immutable and always holds a valid coordinate.
type GeoPoint struct {
	longitude float64
	latitude  float64
}

// NewGeoPoint creates a GeoPoint, validating both coordinates.
// Longitude must be within [-180, 180] and latitude within [-90, 90].
// NaN and infinite values are rejected; range comparisons alone would
// let NaN through.
func NewGeoPoint(longitude, latitude float64) (GeoPoint, error) {
	if !isFinite(longitude) {
		return GeoPoint{}, fmt.Errorf("longitude %f is not a finite number", longitude)
	}
	if !isFinite(latitude) {
		return GeoPoint{}, fmt.Errorf("latitude %f is not a finite number", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return GeoPoint{}, fmt.Errorf("longitude %f out of range [-180, 180]", longitude)
	}
	if latitude < -90 || latitude > 90 {
		return GeoPoint{}, fmt.Errorf("latitude %f out of range [-90, 90]", latitude)
	}
	return GeoPoint{longitude: longitude, latitude: latitude}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Longitude returns the longitude in degrees
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in degrees
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// IsZero returns true for the zero value (0,0 is a valid coordinate but is
// treated as "unset" for farms that never provided a location)
func (p GeoPoint) IsZero() bool {
	return p.longitude == 0 && p.latitude == 0
}

// DistanceTo returns the great-circle distance to other in meters,
// computed with the haversine formula.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// String returns "lat,lon" with six decimal places
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.latitude, p.longitude)
}
