package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName    = errors.New("full name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyInput       = errors.New("text or image is required")
	ErrEmptyImage       = errors.New("image data is empty")
	ErrInvalidImageType = errors.New("image must have an image/* MIME type")
)
