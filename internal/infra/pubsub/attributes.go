package pubsub

import (
	"strconv"

	"addressbook/internal/domain/service"
)

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.AddressEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"address_id": strconv.FormatUint(event.AddressID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
