// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingToken is returned by the access guard when the request
	// carries neither an "Authorization" header nor a token query parameter.
	ErrMissingToken = errors.New("no access token in request")

	// ErrForbidden is returned when the authenticated user's role is not
	// among the roles allowed for the route.
	ErrForbidden = errors.New("role is not allowed for this route")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserInContext is returned when a handler behind the access guard
	// finds no authenticated user in the request context.
	ErrNoUserInContext = errors.New("no authenticated user in context")

	// ErrOAuthStateMismatch is returned when the state echoed back by the
	// provider differs from the one stored in the login session.
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")

	// ErrOAuthDenied is returned when the provider redirects back with an
	// error instead of an authorization code.
	ErrOAuthDenied = errors.New("oauth authorization denied")
)
