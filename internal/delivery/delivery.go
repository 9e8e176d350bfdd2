// Package delivery defines the contract every transport entry point of the
// application fulfils.
package delivery

import "context"

// Delivery is a transport server the application can start. Implementations
// register their stop hook with the fx lifecycle themselves.
type Delivery interface {
	Serve(ctx context.Context) error
}
