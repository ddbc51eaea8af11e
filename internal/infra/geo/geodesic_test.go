package geo

import (
	"testing"

	"addressbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestGeodesicCalculator_DistanceKm(t *testing.T) {
	calc := NewGeodesicCalculator()

	tests := []struct {
		name  string
		a, b  entity.Coordinate
		want  float64
		delta float64
	}{
		{
			name: "same point",
			a:    entity.Coordinate{Latitude: 12.5, Longitude: -45},
			b:    entity.Coordinate{Latitude: 12.5, Longitude: -45},
			want: 0, delta: 1e-9,
		},
		{
			// One degree of longitude along the equator is a·π/180.
			name: "one degree along the equator",
			a:    entity.Coordinate{Latitude: 0, Longitude: 0},
			b:    entity.Coordinate{Latitude: 0, Longitude: 1},
			want: 111.319491, delta: 1e-3,
		},
		{
			// A meridian degree at the equator is shorter than an equatorial one on the ellipsoid.
			name: "one degree along the meridian",
			a:    entity.Coordinate{Latitude: 0, Longitude: 0},
			b:    entity.Coordinate{Latitude: 1, Longitude: 0},
			want: 110.574389, delta: 1e-3,
		},
		{
			name: "origin to (10,10)",
			a:    entity.Coordinate{Latitude: 0, Longitude: 0},
			b:    entity.Coordinate{Latitude: 10, Longitude: 10},
			want: 1565.11, delta: 0.5,
		},
		{
			name: "pole to pole",
			a:    entity.Coordinate{Latitude: 90, Longitude: 0},
			b:    entity.Coordinate{Latitude: -90, Longitude: 0},
			want: 20003.931, delta: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.DistanceKm(tt.a, tt.b), tt.delta)
		})
	}
}

func TestGeodesicCalculator_Symmetric(t *testing.T) {
	calc := NewGeodesicCalculator()
	a := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	b := entity.Coordinate{Latitude: 35.6762, Longitude: 139.6503}

	assert.InDelta(t, calc.DistanceKm(a, b), calc.DistanceKm(b, a), 1e-9)
}
