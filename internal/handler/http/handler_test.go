package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/mock"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/validators"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	lookup      *mock.MockLookupService
	queryClient *mock.MockQueryClient
	appInfo     *mock.MockAppInfoService
}

// newTestHandler builds a Handler backed by gomock services and the default
// bank list.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		lookup:      mock.NewMockLookupService(ctrl),
		queryClient: mock.NewMockQueryClient(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	bankList := banks.Default()
	services := &service.Services{
		LookupService:  m.lookup,
		QueryClient:    m.queryClient,
		AppInfoService: m.appInfo,
		Banks:          bankList,

		LookupRequestValidator: validators.NewLookupRequestValidator(bankList),
	}

	return NewHandler(services, 0, logger.Nop()), m
}

func newFormRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
