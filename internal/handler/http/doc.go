// Package http implements the HTTP transport layer of the library API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer-token authentication, role checks, request
// tracing, access logging, CORS and response compression are handled in
// this package before requests are delegated to the service layer.
package http
