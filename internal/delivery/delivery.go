// Package delivery defines the contract every transport entry point of the
// application implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server.
type Delivery interface {
	// Serve blocks, serving until the context is cancelled or a fatal error occurs.
	Serve(ctx context.Context) error
}
