// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
// Every listing is returned in ascending ID order, which is insertion order.
type AddressRepository interface {
	// CreateAddress persists a new address and sets its store-assigned ID.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if no such address exists.
	FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error)

	// ListAddresses retrieves at most limit addresses after skipping offset of them.
	ListAddresses(ctx context.Context, offset, limit int) ([]*entity.Address, error)

	// FindAllAddresses retrieves every stored address.
	FindAllAddresses(ctx context.Context) ([]*entity.Address, error)

	// CountAddresses returns the number of stored addresses.
	CountAddresses(ctx context.Context) (int64, error)

	// UpdateAddress overwrites the stored row that has address.ID.
	// Returns ErrAddressNotFound if no such address exists.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	// Returns ErrAddressNotFound if no such address exists.
	DeleteAddress(ctx context.Context, id uint64) error
}
