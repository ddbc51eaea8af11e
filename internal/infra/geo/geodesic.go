// Package geo provides distance computations on the WGS-84 ellipsoid.
package geo

import (
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/tidwall/geodesic"
)

const metersPerKilometer = 1000.0

// geodesicCalculator solves the inverse geodesic problem with Karney's algorithm.
type geodesicCalculator struct {
	ellipsoid *geodesic.Ellipsoid
}

// NewGeodesicCalculator returns a DistanceCalculator on the WGS-84 ellipsoid.
func NewGeodesicCalculator() service.DistanceCalculator {
	return &geodesicCalculator{ellipsoid: geodesic.WGS84}
}

// DistanceKm returns the ellipsoidal geodesic distance between a and b in kilometers.
func (g *geodesicCalculator) DistanceKm(a, b entity.Coordinate) float64 {
	var meters float64
	g.ellipsoid.Inverse(a.Latitude, a.Longitude, b.Latitude, b.Longitude, &meters, nil, nil)

	return meters / metersPerKilometer
}
