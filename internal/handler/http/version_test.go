package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/mock"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "plain", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "special chars", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			appInfo := mock.NewMockAppInfoService(ctrl)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			h := NewHandler(&service.Services{AppInfoService: appInfo}, 0, logger.Nop())

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}
