package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted local password.
const MinPasswordLength = 6

// emailPattern is the address shape accepted at registration.
var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// Field names accepted by [RequestValidator.Validate] to scope a check.
const (
	FieldID       = "id"
	FieldAuthorID = "author_id"
)

// RequestValidator checks inbound request payloads with
// go-playground/validator struct tags plus a few rules tags cannot express
// (id formats, calendar dates).
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a [Validator] with the custom "email_address"
// rule registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements [Validator]. For string inputs the fields argument
// selects which id format to check ([FieldID] for books, [FieldAuthorID]
// for authors).
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.structErr(v.validate.StructCtx(ctx, value))
	case models.LoginRequest:
		return v.structErr(v.validate.StructCtx(ctx, value))

	case models.Author:
		return v.validateAuthor(ctx, value)
	case models.AuthorUpdate:
		return v.validateAuthorUpdate(ctx, value)

	case models.BookInput:
		return v.validateBookInput(ctx, value)
	case models.BookUpdate:
		return v.validateBookUpdate(ctx, value)

	case string:
		return validateID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateAuthor(ctx context.Context, author models.Author) error {
	if err := v.structErr(v.validate.StructCtx(ctx, author)); err != nil {
		return err
	}
	if author.BirthDate.IsZero() {
		return ErrMissingRequiredFields
	}
	return nil
}

func (v *RequestValidator) validateAuthorUpdate(ctx context.Context, update models.AuthorUpdate) error {
	if err := v.structErr(v.validate.StructCtx(ctx, update)); err != nil {
		return err
	}
	if update.BirthDate != nil && update.BirthDate.IsZero() {
		return ErrInvalidBirthDate
	}
	return nil
}

func (v *RequestValidator) validateBookInput(ctx context.Context, in models.BookInput) error {
	if err := v.structErr(v.validate.StructCtx(ctx, in)); err != nil {
		return err
	}
	if !utils.IsUUID(in.Author) {
		return ErrInvalidAuthorID
	}
	return nil
}

func (v *RequestValidator) validateBookUpdate(ctx context.Context, update models.BookUpdate) error {
	if err := v.structErr(v.validate.StructCtx(ctx, update)); err != nil {
		return err
	}
	if update.Author != nil && !utils.IsUUID(*update.Author) {
		return ErrInvalidAuthorID
	}
	return nil
}

func validateID(id string, fields ...string) error {
	if utils.IsUUID(id) {
		return nil
	}
	for _, f := range fields {
		if f == FieldAuthorID {
			return ErrInvalidAuthorID
		}
	}
	return ErrInvalidBookID
}

// structErr maps the first failing tag onto a package sentinel.
func (v *RequestValidator) structErr(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
	}

	fe := validationErrors[0]
	switch {
	case fe.Tag() == "required":
		return ErrMissingRequiredFields
	case fe.Tag() == "email_address":
		return ErrInvalidEmail
	case fe.Tag() == "min" && fe.Field() == "Password":
		return ErrPasswordTooShort
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, fe.Field())
	}
}
