package crypto

import "encoding/base64"

// legacyEncoder stores the standard base64 of the password. It is
// reversible and exists only so data written by the browser demo keeps
// working.
type legacyEncoder struct{}

// NewLegacyEncoder constructs the reversible [PasswordEncoder].
func NewLegacyEncoder() PasswordEncoder {
	return legacyEncoder{}
}

func (legacyEncoder) Encode(raw string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (legacyEncoder) Matches(encoded, raw string) bool {
	return encoded == base64.StdEncoding.EncodeToString([]byte(raw))
}
