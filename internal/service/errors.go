package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserAlreadyExists   = errors.New("the user already exists")
	ErrUserNotFound        = errors.New("user not found")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	// ErrIdentityResolutionFailed is returned when a federated profile could
	// not be mapped to a local identity. Callers treat it as a failed login.
	ErrIdentityResolutionFailed = errors.New("identity resolution failed")
	ErrInvalidExternalProfile   = errors.New("external profile has no id or username")

	// ErrSessionIdentityGone is returned when a session references an
	// identity that no longer exists.
	ErrSessionIdentityGone = errors.New("session identity no longer exists")

	// ErrBookAuthorNotFound is returned when a book references an author
	// that does not exist.
	ErrBookAuthorNotFound = errors.New("author not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
