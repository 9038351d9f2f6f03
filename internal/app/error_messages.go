// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// account checker handlers, services and terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, the rendered form or log entries. Keeping them in one
// place ensures consistent wording across transports.
package app

const (
	// MsgErrorFetchingData is logged when a batch lookup fails and prefixes
	// the failure shown to the user.
	MsgErrorFetchingData = "error fetching data"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidForm is returned when a form submission cannot be parsed.
	MsgInvalidForm = "invalid form was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
