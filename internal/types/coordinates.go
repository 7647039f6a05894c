package types

import (
	"errors"
	"math"
)

var (
	// ErrInvalidLatitude is returned when latitude is outside [-90, 90]
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")
	// ErrInvalidLongitude is returned when longitude is outside [-180, 180]
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks that both components are within their geographic range.
// NaN is never in range.
func (c Coords) Validate() error {
	if !inRange(c.Latitude, 90) {
		return ErrInvalidLatitude
	}
	if !inRange(c.Longitude, 180) {
		return ErrInvalidLongitude
	}
	return nil
}

func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}
