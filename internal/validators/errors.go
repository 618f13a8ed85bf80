package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrMissingRequiredFields is returned when a required field is absent
	// or blank.
	ErrMissingRequiredFields = errors.New("all fields are required")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrInvalidFieldValue     = errors.New("invalid field value")
	ErrInvalidAuthorID       = errors.New("invalid author ID format")
	ErrInvalidBookID         = errors.New("invalid book ID format")
	ErrInvalidBirthDate      = errors.New("invalid birth date")
)
