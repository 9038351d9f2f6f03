// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote account lookup API.
//
// The abstraction is [LookupAdapter], which decouples the service layer from
// the HTTP details of the upstream endpoint. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lookup_adapter_mock.go -package=mock

// LookupAdapter resolves a single account number to its holder.
type LookupAdapter interface {
	// LookupAccount issues one request for accountNumber within the bankCode
	// namespace. It returns the decoded upstream record, or an error if the
	// request fails, the upstream responds with a non-2xx status, or the
	// body is not valid JSON.
	LookupAccount(ctx context.Context, bankCode, accountNumber string) (models.LookupResult, error)
}
