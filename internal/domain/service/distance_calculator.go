// Package service declares domain services implemented by the infra layer.
package service

import "addressbook/internal/domain/entity"

// DistanceCalculator measures the distance between two points on the earth.
type DistanceCalculator interface {
	// DistanceKm returns the geodesic distance between a and b in kilometers.
	DistanceKm(a, b entity.Coordinate) float64
}
