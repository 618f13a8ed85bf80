// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// library API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the `{"message": "..."}` response bodies. Clients match on some of them, so
// the wording is part of the API.
package app

const (
	// MsgRoot is the plain-text body of GET /.
	MsgRoot = "Library API - Use /api-docs for documentation"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// requested with an unsupported method.
	MsgRouteNotFound = "Route not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)

// Authentication and authorization messages.
const (
	MsgUserRegistered      = "User registered successfully"
	MsgLoginSuccessful     = "Successful login"
	MsgSessionClosed       = "Session closed successfully"
	MsgUserAlreadyExists   = "The user already exists"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgInvalidEmail        = "Please provide a valid email address"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgNotAuthorized       = "Not authorized to access this route"
	MsgForbidden           = "You do not have permission to perform this action"
	MsgUserNotFound        = "User not found"
	MsgGitHubLoginDisabled = "GitHub login is not configured"
)

// Catalog messages.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidInputData  = "Invalid input data"
	MsgNothingToUpdate   = "No fields to update were provided"
	MsgInvalidAuthorID   = "Invalid author ID format"
	MsgInvalidBookID     = "Invalid book ID format"
	MsgInvalidBirthDate  = "Invalid birth date format"
	MsgAuthorNotFound    = "Author not found"
	MsgBookNotFound      = "Book not found"
	MsgISBNAlreadyExists = "A book with this ISBN already exists"
	MsgAuthorDeleted     = "Author deleted successfully"
	MsgBookDeleted       = "Book deleted successfully"
	MsgAuthorHasBooks    = "Cannot delete author with associated books. Delete the books first or reassign them to another author."
)
