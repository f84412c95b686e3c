// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests before they reach storage or the model
// provider.
//
// [CredentialValidator] covers registration, sign-in, password reset and
// change, and profile edits. [AnalysisValidator] rejects analysis requests
// that carry neither text nor a usable screenshot. Both return the sentinel
// errors in errors.go so callers can map them to user messages.
package validators

import "context"

// Validator checks one request value. When fields are given, only those
// fields are checked; an unknown name yields [ErrUnknownField] and an
// unsupported value type yields [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
