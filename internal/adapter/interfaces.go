// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations with external identity
// providers.
//
// The primary abstraction is [OAuthProvider], which hides the OAuth2
// authorization-code exchange and the provider's REST API behind two calls.
// The package ships a GitHub implementation ([NewGitHubProvider]) built on
// golang.org/x/oauth2 and a resty client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without inspecting
// provider responses.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-library-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/oauth_provider_mock.go -package=mock

// OAuthProvider drives the authorization-code flow against an external
// identity provider.
type OAuthProvider interface {
	// AuthCodeURL returns the consent screen URL the browser is redirected
	// to. state is echoed back on the callback and must be checked by the
	// caller.
	AuthCodeURL(state string) string

	// FetchProfile exchanges the callback code for an access token and
	// loads the profile of the account that granted it.
	FetchProfile(ctx context.Context, code string) (models.ExternalProfile, error)
}
