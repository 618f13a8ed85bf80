package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early with an error if the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
