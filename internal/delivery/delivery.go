// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP API, sweep worker).
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
