package entity

import (
	"fmt"
	"math"

	domainerrors "addressbook/internal/domain/errors"

	"github.com/paulmach/orb"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate is a WGS-84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks both components against their ranges.
func (c Coordinate) Validate() error {
	if err := ValidateLatitude(c.Latitude); err != nil {
		return err
	}

	return ValidateLongitude(c.Longitude)
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// ValidateLatitude fails with ErrInvalidCoordinate outside [-90, 90].
func ValidateLatitude(v float64) error {
	if math.IsNaN(v) || v < MinLatitude || v > MaxLatitude {
		return domainerrors.ErrInvalidCoordinate.WithDetails(
			fmt.Sprintf("latitude must be between %v and %v degrees, got %v", MinLatitude, MaxLatitude, v),
		)
	}

	return nil
}

// ValidateLongitude fails with ErrInvalidCoordinate outside [-180, 180].
func ValidateLongitude(v float64) error {
	if math.IsNaN(v) || v < MinLongitude || v > MaxLongitude {
		return domainerrors.ErrInvalidCoordinate.WithDetails(
			fmt.Sprintf("longitude must be between %v and %v degrees, got %v", MinLongitude, MaxLongitude, v),
		)
	}

	return nil
}
