package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// CreateAddressInput represents the input for storing a new address
type CreateAddressInput struct {
	Name      string  `json:"name"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateAddressInput represents the input for updating an existing address.
// Nil fields keep their stored value.
type UpdateAddressInput struct {
	Name      *string  `json:"name,omitempty"`
	Street    *string  `json:"street,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ListAddressesInput selects one page of addresses
type ListAddressesInput struct {
	Skip  int
	Limit int
}

// ListAddressesOutput is one page of addresses plus the total stored count
type ListAddressesOutput struct {
	Addresses []*entity.Address
	Total     int64
}

// SearchAddressesInput describes a proximity search
type SearchAddressesInput struct {
	Latitude   float64
	Longitude  float64
	DistanceKm float64
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	CreateAddress(ctx context.Context, input *CreateAddressInput) (*entity.Address, error)
	GetAddress(ctx context.Context, id uint64) (*entity.Address, error)
	ListAddresses(ctx context.Context, input *ListAddressesInput) (*ListAddressesOutput, error)
	UpdateAddress(ctx context.Context, id uint64, input *UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress removes the address and returns the value it held
	DeleteAddress(ctx context.Context, id uint64) (*entity.Address, error)

	// SearchAddresses returns every address whose geodesic distance from the
	// center is at most DistanceKm, in store order
	SearchAddresses(ctx context.Context, input *SearchAddressesInput) ([]*entity.Address, error)
}
