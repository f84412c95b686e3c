// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionEmailCtxKey is the key used to store the email of the authenticated
// session in the context. Written by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.SessionEmailCtxKey, "jane@x.io")
var SessionEmailCtxKey = contextKey("sessionEmail")

// GetSessionEmailFromContext retrieves the session email from the context.
//
// Returns the email and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSessionEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(SessionEmailCtxKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// SessionCtxKey is the key used to store the authenticated [models.Session]
// in the context. Written by the auth middleware next to SessionEmailCtxKey.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the context.
// ok is false when the value is missing or the session is empty.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || session.IsEmpty() {
		return models.Session{}, false
	}
	return session, true
}
