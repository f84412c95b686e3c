package crypto

import "errors"

var (
	ErrUnknownEncoding = errors.New("unknown password encoding")
	ErrMalformedHash   = errors.New("malformed password hash")
)
