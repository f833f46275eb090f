// Package delivery holds the entry points that expose the use cases.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
// Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
