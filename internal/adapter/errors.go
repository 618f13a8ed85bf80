package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("provider rejected the access token")
	ErrCodeExchangeFailed  = errors.New("authorization code exchange failed")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrInvalidProfile      = errors.New("identity provider returned an invalid profile")
)
