package adapter

import "errors"

var (
	// ErrMissingAPIKey means neither a saved override nor a configured key exists.
	ErrMissingAPIKey = errors.New("no API key available")
	// ErrUnknownBackend is returned for a generator backend name that is not supported.
	ErrUnknownBackend = errors.New("unknown generator backend")

	// ErrUnauthorized means the backend rejected the API key.
	ErrUnauthorized = errors.New("generator rejected credentials")
	// ErrQuotaExceeded means the backend rate-limited the call.
	ErrQuotaExceeded = errors.New("generator quota exceeded")
	// ErrBadRequest means the backend refused the request as malformed.
	ErrBadRequest = errors.New("generator rejected request")
	// ErrUpstream covers every other non-success backend answer.
	ErrUpstream = errors.New("generator upstream error")
	// ErrEmptyResponse means the backend answered without any text.
	ErrEmptyResponse = errors.New("generator returned no text")
)
