// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupResult is the resolved account holder for a single account number.
//
// JSON field names follow the remote lookup API response body, so the same
// type is used both to decode the upstream response and to render results.
// A LookupResult is created only from a successful remote call and is never
// mutated afterwards.
type LookupResult struct {
	BankCode      string `json:"bankcode"`
	BankName      string `json:"bankname"`
	AccountNumber string `json:"accountnumber"`
	AccountName   string `json:"accountname"`
}

// LookupStatus is the lifecycle state of the most recent batch lookup of a
// form session.
type LookupStatus string

const (
	// StatusIdle means nothing has been submitted yet.
	StatusIdle LookupStatus = "idle"
	// StatusPending means a batch is in flight.
	StatusPending LookupStatus = "pending"
	// StatusSucceeded means the last batch resolved every account number.
	StatusSucceeded LookupStatus = "succeeded"
	// StatusFailed means at least one lookup of the last batch failed.
	StatusFailed LookupStatus = "failed"
)

// FormState is a snapshot of one lookup form: the user input, the results of
// the last successful batch and the status of the last submission.
//
// Results is replaced only by a successful batch. A failed or pending batch
// leaves the previous results in place.
type FormState struct {
	RawAccountNumbers string
	SelectedBankCode  string
	Results           []LookupResult
	Status            LookupStatus
	// Err holds the failure description when Status is StatusFailed.
	Err string
}

// IsSubmitting reports whether a batch is currently in flight.
func (s FormState) IsSubmitting() bool {
	return s.Status == StatusPending
}

// HasResults reports whether the results panel should be shown.
func (s FormState) HasResults() bool {
	return len(s.Results) > 0
}
