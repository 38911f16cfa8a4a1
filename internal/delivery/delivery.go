// Package delivery groups the inbound adapters of the application.
package delivery

import "context"

// Delivery is a long running inbound adapter such as an HTTP server, a queue consumer or a scheduler.
type Delivery interface {
	// Serve blocks until the adapter stops or fails to start.
	Serve(ctx context.Context) error
}
