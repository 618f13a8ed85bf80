// Package server runs the HTTP server of the library API.
//
// It owns the server lifecycle: startup, waiting for the caller's context
// to be cancelled (typically by a termination signal), and graceful
// shutdown that lets in-flight requests finish.
package server
