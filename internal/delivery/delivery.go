// Package delivery defines the transport-facing entry points of the
// application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// underlying listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
