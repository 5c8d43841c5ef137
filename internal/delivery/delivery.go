// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker push endpoint)
// started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
