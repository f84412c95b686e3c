package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDuplicateAccount   = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrIncorrectPassword  = errors.New("incorrect current password")
	ErrNoActiveSession    = errors.New("no active session")

	ErrEmptyInput     = errors.New("nothing to analyze")
	ErrStaleResponse  = errors.New("response superseded by a newer request")
	ErrRecordNotFound = errors.New("analysis record not found")
	ErrInvalidTheme   = errors.New("invalid theme")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
