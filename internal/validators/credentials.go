package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/models"
)

// Field name constants used to restrict credential validation to a subset
// of fields.
const (
	// FieldFullName targets the display name of a new account.
	FieldFullName = "full_name"

	// FieldEmail targets the account email (required and well-formed).
	FieldEmail = "email"

	// FieldPassword targets a password that is only checked for presence.
	FieldPassword = "password"

	// FieldNewPassword targets a password being set, which must satisfy the
	// minimum length.
	FieldNewPassword = "new_password"

	// FieldProfileUpdate requires at least one non-empty field in a profile
	// update and a well-formed email when one is given.
	FieldProfileUpdate = "profile_update"
)

// MinPasswordLength is the shortest password accepted on registration,
// reset and change.
const MinPasswordLength = 6

// CredentialValidator implements [Validator] for account-related requests:
// RegisterRequest, LoginRequest, ResetPasswordRequest, ChangePasswordRequest
// and ProfileUpdate. Value and pointer forms are accepted.
type CredentialValidator struct{}

// NewCredentialValidator constructs a CredentialValidator and returns it as
// the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.ResetPasswordRequest:
		return v.validateReset(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateReset(*value, fields...)
	case models.ChangePasswordRequest:
		return v.validateChange(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChange(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(request.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword, FieldNewPassword:
			if err := validatePassword(request.Password, f == FieldNewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateReset(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldNewPassword:
			if err := validatePassword(request.NewPassword, true); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateChange(request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.CurrentPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := validatePassword(request.NewPassword, true); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileUpdate}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileUpdate:
			if update == (models.ProfileUpdate{}) {
				return ErrNoFieldsToUpdate
			}
			if update.Email != "" {
				if err := validateEmail(update.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string, checkLength bool) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if checkLength && len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
