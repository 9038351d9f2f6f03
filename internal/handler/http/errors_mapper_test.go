package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"unknown bank", fmt.Errorf("%w: %q", validators.ErrUnknownBankCode, "x"), http.StatusBadRequest},
		{"empty bank", validators.ErrEmptyBankCode, http.StatusBadRequest},
		{"in progress", service.ErrSubmissionInProgress, http.StatusConflict},
		{"remote not found", fmt.Errorf("%w: %w", service.ErrBatchLookupFailed, adapter.ErrNotFound), http.StatusBadGateway},
		{"remote timeout", fmt.Errorf("%w: %w", service.ErrBatchLookupFailed, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
