// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP today; more can be
// added behind the same fx group).
type Delivery interface {
	// Serve blocks until the underlying server stops.
	Serve(ctx context.Context) error
}
