package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// mapStatusError maps a backend status code and message onto the adapter
// sentinels. It returns nil for 2xx codes.
func mapStatusError(code int, message string) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = http.StatusText(code)
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, code, message)
	}
}
