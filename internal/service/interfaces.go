// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the batch account lookup flow: parsing the raw
// form input, fanning lookups out to the remote API and tracking the
// submission lifecycle of every form session.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LookupService resolves a batch of account numbers within one bank.
type LookupService interface {
	// Lookup issues one remote lookup per account number, concurrently, and
	// returns the results in the order of accountNumbers. The batch is
	// all-or-nothing: if any lookup fails no results are returned and the
	// error names the failing account number. An empty batch returns an
	// empty slice without any remote call.
	Lookup(ctx context.Context, bankCode string, accountNumbers []string) ([]models.LookupResult, error)
}

// LookupServiceWrapper decorates a LookupService with additional behaviour
// such as logging.
type LookupServiceWrapper interface {
	Wrap(LookupService) LookupService
}

// QueryClient owns the form state of every session and drives the
// idle → pending → succeeded | failed lifecycle of its submissions.
type QueryClient interface {
	// Submit records the input of sessionID, parses it and runs the batch
	// lookup. It returns the resulting form state. If a batch of the same
	// session is still pending it returns [ErrSubmissionInProgress] without
	// dispatching anything. A failed batch is logged, leaves previous results
	// untouched and is returned as an error together with the failed state.
	Submit(ctx context.Context, sessionID, rawAccountNumbers, bankCode string) (models.FormState, error)

	// State returns a snapshot of the form state of sessionID. Unknown
	// sessions are reported as idle with no input.
	State(sessionID string) models.FormState

	// Evict drops sessions not touched since before, skipping sessions with
	// a pending batch. It returns the number of evicted sessions.
	Evict(before time.Time) int
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
