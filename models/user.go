package models

import (
	"strings"
	"time"
)

// UserProfile holds the identity attributes of an account that are safe to
// expose outside the credential store.
type UserProfile struct {
	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique account key. Lookups compare it case-insensitively.
	Email string `json:"email"`

	Phone string `json:"phone"`
	City  string `json:"city"`

	// DOB is the date of birth as entered by the user (free-form, usually YYYY-MM-DD).
	DOB string `json:"dob"`

	// IDType and IDNumber describe an optional identity document.
	IDType   string `json:"idType,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`

	// IsVerified is set on registration and never cleared.
	IsVerified bool `json:"isVerified"`
}

// UserAccount is the persisted account record. Password never holds the
// plaintext value; it is the output of the configured password encoder.
type UserAccount struct {
	UserProfile

	Password string `json:"password"`
}

// Session is the active-user pointer derived from a [UserAccount] with the
// password stripped.
type Session struct {
	UserProfile

	// StartedAt is the moment the session was opened by login or registration.
	StartedAt time.Time `json:"startedAt"`
}

// ProfileUpdate carries the fields a signed-in user wants to change.
// Empty fields are left untouched.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	DOB      string `json:"dob,omitempty"`
	IDType   string `json:"idType,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
}

// SessionFromAccount builds the session view of account opened at startedAt.
func SessionFromAccount(account UserAccount, startedAt time.Time) Session {
	return Session{
		UserProfile: account.UserProfile,
		StartedAt:   startedAt,
	}
}

// SameEmail reports whether two emails identify the same account.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// IsEmpty reports whether s carries no identity.
func (s Session) IsEmpty() bool {
	return strings.TrimSpace(s.Email) == ""
}
