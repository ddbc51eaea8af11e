// Package delivery defines the transport entry points of the service.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
