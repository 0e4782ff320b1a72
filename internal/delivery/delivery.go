// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport such as an HTTP server.
// Serve blocks until the server stops and returns nil on a graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
