package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/validators"
)

// errorStatusMap is checked in order, so more specific errors come first.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{validators.ErrEmptyBankCode, http.StatusBadRequest},
	{validators.ErrUnknownBankCode, http.StatusBadRequest},
	{service.ErrSubmissionInProgress, http.StatusConflict},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{service.ErrBatchLookupFailed, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
