package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_encoder_mock.go -package=mock

// PasswordEncoder turns raw account passwords into their stored form and
// checks candidates against it. It knows nothing about accounts, storage or
// sessions.
type PasswordEncoder interface {
	// Encode returns the stored form of raw.
	Encode(raw string) (string, error)

	// Matches reports whether raw corresponds to the stored form encoded.
	// A malformed encoded value never matches.
	Matches(encoded, raw string) bool
}
