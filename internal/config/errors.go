package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was
	// provided. The server must not start without one.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing HTTP address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidOAuthConfigs indicates an incomplete federated login setup.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
