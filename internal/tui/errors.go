// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
)

const msgNetworkUnavailable = "No network connection or the analysis service is unreachable."

// userMessages is checked in order, the first errors.Is match wins.
var userMessages = []struct {
	target  error
	message string
}{
	{validators.ErrPasswordTooShort, app.MsgPasswordTooShort},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrDuplicateAccount, app.MsgDuplicateAccount},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrAccountNotFound, app.MsgAccountNotFound},
	{service.ErrIncorrectPassword, app.MsgIncorrectPassword},
	{service.ErrNoActiveSession, app.MsgNoActiveSession},
	{service.ErrEmptyInput, app.MsgEmptyInput},
	{service.ErrRecordNotFound, app.MsgRecordNotFound},
	{service.ErrInvalidTheme, app.MsgInvalidTheme},

	{gateway.ErrEmptyInput, app.MsgEmptyInput},
	{gateway.ErrInvalidInput, app.MsgInvalidDataProvided},
	{gateway.ErrAnalysisParse, app.MsgAnalysisFailed},
	{gateway.ErrRegistryParse, app.MsgRegistryUnavailable},

	{adapter.ErrMissingAPIKey, app.MsgMissingAPIKey},

	{store.ErrStorageUnavailable, app.MsgInternalServerError},

	{errImageUnreadable, "The screenshot file could not be read."},
}

// userMessage converts err into the text shown in the status line.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, candidate := range userMessages {
		if errors.Is(err, candidate.target) {
			return candidate.message
		}
	}

	if isNetworkError(err) {
		return msgNetworkUnavailable
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrQuotaExceeded),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUpstream),
		errors.Is(err, adapter.ErrEmptyResponse):
		return app.MsgAnalysisUnavailable
	}

	return app.MsgInternalServerError
}

// resetMessage is userMessage for the password reset screen, where a missing
// account is reported by email.
func resetMessage(err error) string {
	if errors.Is(err, service.ErrAccountNotFound) {
		return app.MsgNoAccountForEmail
	}
	return userMessage(err)
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
