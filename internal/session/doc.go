// Package session keeps the short-lived server-side state that carries a
// federated login across the OAuth redirect: the anti-forgery state value
// sent to the provider and, once the callback resolved an identity, the
// reference to it.
//
// Sessions live in process memory and are addressed by a random id kept in
// an HMAC-signed cookie. They expire after a fixed TTL; expired sessions are
// purged by a background worker. Bearer tokens, not sessions, authorize API
// access once the callback completes.
package session
