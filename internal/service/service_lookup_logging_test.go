package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-checker/internal/mock"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLookupLoggingService(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		results  []models.LookupResult
		err      error
		wantLog  string
		wantErr  error
		wantLen  int
		wantWarn bool
	}{
		{
			name:    "success",
			results: []models.LookupResult{{AccountNumber: "1"}, {AccountNumber: "2"}},
			wantLog: "batch lookup succeeded",
			wantLen: 2,
		},
		{
			name:     "failure",
			err:      boom,
			wantLog:  "batch lookup failed",
			wantErr:  boom,
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockLookupService(ctrl)
			inner.EXPECT().Lookup(gomock.Any(), "bca", []string{"1", "2"}).Return(tt.results, tt.err)

			var logs bytes.Buffer
			svc := service.NewLookupLoggingService(bufferLogger(&logs)).Wrap(inner)

			got, err := svc.Lookup(context.Background(), "bca", []string{"1", "2"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}

			out := logs.String()
			assert.Contains(t, out, tt.wantLog)
			assert.Contains(t, out, `"bank_code":"bca"`)
			assert.Contains(t, out, `"accounts":2`)
			if tt.wantWarn {
				assert.Contains(t, out, `"level":"warn"`)
			} else {
				assert.Contains(t, out, `"level":"info"`)
			}
		})
	}
}
