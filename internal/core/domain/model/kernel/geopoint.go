package kernel

import (
	"fmt"
	"strings"

	"logipeek/internal/pkg/errs"
)

// Geographic coordinate bounds for GeoPoint validation.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// GeoPoint is a value object representing a real-world pickup or dropoff
// location: a human-readable address plus WGS84 coordinates.
//
// GeoPoint is immutable after construction. The zero value is invalid and
// must be created through NewGeoPoint, which enforces:
//   - non-empty address
//   - latitude within [-90, 90]
//   - longitude within [-180, 180]
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint("12 Harbor Rd", 10.7769, 106.7009)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct {
	address string
	lat     float64
	lng     float64
}

// NewGeoPoint creates a validated GeoPoint.
func NewGeoPoint(address string, lat, lng float64) (GeoPoint, error) {
	if strings.TrimSpace(address) == "" {
		return GeoPoint{}, errs.NewValueIsRequiredError("address")
	}
	if lat < LatitudeMin || lat > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	if lng < LongitudeMin || lng > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		address: address,
		lat:     lat,
		lng:     lng,
	}, nil
}

// Address returns the human-readable address.
func (p GeoPoint) Address() string {
	return p.address
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by address and coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.address == other.address && p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f)", p.address, p.lat, p.lng)
}

// Validate checks that the point was constructed through NewGeoPoint.
// A zero-value GeoPoint has an empty address and fails validation.
func (p GeoPoint) Validate() error {
	if p.address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if p.lat < LatitudeMin || p.lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", p.lat, LatitudeMin, LatitudeMax)
	}
	if p.lng < LongitudeMin || p.lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", p.lng, LongitudeMin, LongitudeMax)
	}
	return nil
}
