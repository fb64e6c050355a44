// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the
// structured HTTP error used across the gateway.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for every non-public error so that
	// remote failure details never leak to callers.
	MsgInternalServerError = "internal server error"

	// MsgFailedToRequestUserService is the default message of a translated
	// user service failure whose response carried no message of its own.
	MsgFailedToRequestUserService = "Failed to request User Service"

	// MsgFailedToRequestMailService is the only error message callers of the
	// mail client ever see. The underlying cause is logged, not returned.
	MsgFailedToRequestMailService = "Failed to request Mail Service"

	// MsgAccessDenied is returned when the user service refuses access for
	// the presented JWT.
	MsgAccessDenied = "access denied"

	// MsgInvalidAPIKey is returned by API-key protected routes when the key
	// is missing or does not match.
	MsgInvalidAPIKey = "invalid api key"

	// MsgMustBeBeforeToday and MsgMustBeAfterToday are the date rule messages
	// of the validation demo route.
	MsgMustBeBeforeToday = "must be before today"
	MsgMustBeAfterToday  = "must be after today"

	// MsgNotFound is returned for unknown routes and for known routes
	// called with a method they do not handle.
	MsgNotFound = "not found"
)
