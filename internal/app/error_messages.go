// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-fraud-guard services, HTTP handlers and terminal UI.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into HTTP response bodies.
package app

const (
	// MsgDuplicateAccount is shown when registration (or a profile email
	// change) targets an email that already has an account.
	MsgDuplicateAccount = "User already exists with this email address."

	// MsgInvalidCredentials is shown when no account matches the supplied
	// email and password.
	MsgInvalidCredentials = "Invalid email or password. Please try again or register."

	// MsgNoActiveSession is shown when an operation needs a signed-in user.
	MsgNoActiveSession = "No active session"

	// MsgAccountNotFound is shown when a profile update cannot find the
	// account behind the session.
	MsgAccountNotFound = "User record not found"

	// MsgNoAccountForEmail is shown by the password reset flow.
	MsgNoAccountForEmail = "No account found with this email address."

	// MsgIncorrectPassword is shown when the current password of a password
	// change does not match.
	MsgIncorrectPassword = "Incorrect current password."

	// MsgPasswordTooShort is shown for new passwords under six characters.
	MsgPasswordTooShort = "Password must be at least 6 characters."

	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgEmptyInput is shown when analysis is requested with neither text
	// nor an image.
	MsgEmptyInput = "Paste a message or attach a screenshot to analyze."

	// MsgAnalysisFailed is shown when the engine returns something that is
	// not a valid Fraud DNA record.
	MsgAnalysisFailed = "The intelligence engine encountered an error parsing this message."

	// MsgAnalysisUnavailable is shown when the analysis could not be run at
	// all (transport, credentials, quota).
	MsgAnalysisUnavailable = "Analysis failed. Please check your connection or API key and try again."

	// MsgRegistryUnavailable is shown when the registry snapshot cannot be
	// fetched or parsed.
	MsgRegistryUnavailable = "Unable to sync with the global threat registry."

	// MsgMissingAPIKey is shown when neither a saved nor a configured API
	// key is available.
	MsgMissingAPIKey = "No API key configured. Add one in settings."

	// MsgRecordNotFound is shown when a history entry no longer exists.
	MsgRecordNotFound = "Analysis record not found"

	// MsgInvalidTheme is returned for themes other than light and dark.
	MsgInvalidTheme = "Unknown theme"

	// MsgStaleResponse is returned when a newer request superseded this one.
	MsgStaleResponse = "Request superseded by a newer one"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the user cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired,
	// cannot be verified, or names a session that is no longer current.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
