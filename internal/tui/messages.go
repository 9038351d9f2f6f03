package tui

import "github.com/MKhiriev/go-account-checker/models"

// lookupDoneMsg carries the form state returned by a finished submission.
type lookupDoneMsg struct {
	state models.FormState
	err   error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
