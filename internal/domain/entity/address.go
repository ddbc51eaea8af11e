// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "addressbook/internal/domain/errors"
)

// Address is the core entity for a stored postal address.
type Address struct {
	ID        uint64  `json:"id"`        // Assigned by the store on creation, never reused.
	Name      string  `json:"name"`      // A label for the address, e.g. "Head office".
	Street    string  `json:"street"`    // Street line.
	City      string  `json:"city"`      // City or locality.
	State     string  `json:"state"`     // State or region.
	Country   string  `json:"country"`   // Country.
	Latitude  float64 `json:"latitude"`  // The geographic latitude in degrees.
	Longitude float64 `json:"longitude"` // The geographic longitude in degrees.
}

// Coordinate returns the address position.
func (a *Address) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// Validate checks every field rule of the address.
// It must pass before the address is written to the store.
func (a *Address) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return domainerrors.ErrInvalidName
	}

	return a.Coordinate().Validate()
}

// AddressPatch carries the fields supplied by an update; nil means "keep".
type AddressPatch struct {
	Name      *string
	Street    *string
	City      *string
	State     *string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

// Apply overwrites the fields present in the patch. The ID is never touched.
func (p *AddressPatch) Apply(a *Address) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.Latitude != nil {
		a.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		a.Longitude = *p.Longitude
	}
}
