package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     *string  `json:"name" validate:"required"`
	Latitude *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Limit    int      `query:"limit" validate:"min=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	name := "home"
	lat := 0.0
	tooFar := 120.0

	assert.NoError(t, v.Validate(&sample{Name: &name, Latitude: &lat}))

	err := v.Validate(&sample{})
	assert.EqualError(t, err, "name is required; latitude is required")

	err = v.Validate(&sample{Name: &name, Latitude: &tooFar, Limit: -1})
	assert.EqualError(t, err, "latitude must be at most 90; limit must be at least 0")
}
