// Package delivery defines the transport-facing surface of the application.
package delivery

import "context"

// Delivery is a serving entry point. The composition root starts every
// registered Delivery and shuts them down through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
