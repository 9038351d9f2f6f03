package service

import "errors"

var (
	// ErrBatchLookupFailed wraps the first failed lookup of a batch.
	ErrBatchLookupFailed = errors.New("batch lookup failed")

	// ErrSubmissionInProgress is returned when a session submits while its
	// previous batch is still pending.
	ErrSubmissionInProgress = errors.New("submission already in progress")
)
