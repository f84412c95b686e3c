package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
)

// NewPasswordEncoder returns the encoder selected by the configured
// password encoding name.
func NewPasswordEncoder(encoding string) (PasswordEncoder, error) {
	switch encoding {
	case config.PasswordEncodingArgon2id, "":
		return NewArgon2Encoder(DefaultArgon2Params), nil
	case config.PasswordEncodingLegacy:
		return NewLegacyEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}
