package service

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
)

// AddressEventType names what happened to an address
type AddressEventType string

const (
	AddressCreated AddressEventType = "address.created"
	AddressUpdated AddressEventType = "address.updated"
	AddressDeleted AddressEventType = "address.deleted"
)

// AddressEvent is emitted after an address write has been committed
type AddressEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       AddressEventType `json:"type"`
	AddressID  uint64           `json:"address_id"`
	Address    *entity.Address  `json:"address"` // State after the write; prior state for deletes
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address change event
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
