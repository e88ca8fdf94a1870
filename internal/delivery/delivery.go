// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the application after dependencies are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
