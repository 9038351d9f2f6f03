package http

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/internal/config"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookupAPI answers like the remote lookup API. Account numbers missing
// from holders get a 404.
func fakeLookupAPI(t *testing.T, holders map[string]string, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		bankCode := r.URL.Query().Get("bankCode")
		accountNumber := r.URL.Query().Get("accountNumber")

		name, ok := holders[accountNumber]
		if !ok {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LookupResult{
			BankCode:      strings.ToUpper(bankCode),
			BankName:      "Bank " + strings.ToUpper(bankCode),
			AccountNumber: accountNumber,
			AccountName:   name,
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestRouter(t *testing.T, lookupURL string) http.Handler {
	t.Helper()

	lookupAdapter, err := adapter.NewHTTPLookupAdapter(config.ClientAdapter{
		LookupURL:      lookupURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(lookupAdapter, banks.Default(), service.Options{
		MaxConcurrentLookups: 4,
		Version:              "v1.0.0",
	}, logger.Nop())

	return NewHandler(services, time.Minute, logger.Nop()).Init()
}

func postForm(t *testing.T, router http.Handler, cookie *http.Cookie, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := newFormRequest(values)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getForm(t *testing.T, router http.Handler, cookie *http.Cookie) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// TestRoutes_FormFlow submits two account numbers, then a batch with an
// unknown account, and checks what the form shows after each step.
func TestRoutes_FormFlow(t *testing.T) {
	var calls atomic.Int64
	api := fakeLookupAPI(t, map[string]string{"123": "Alice", "456": "Bob"}, &calls)
	router := newTestRouter(t, api.URL)

	rec := postForm(t, router, nil, url.Values{
		formFieldAccountNumbers: {"123\n456\n"},
		formFieldBankCode:       {"bca"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, int64(2), calls.Load())

	body := getForm(t, router, cookie)
	assert.Contains(t, body, `id="results"`)
	alice, bob := strings.Index(body, "Alice"), strings.Index(body, "Bob")
	require.Positive(t, alice)
	require.Positive(t, bob)
	assert.Less(t, alice, bob)

	rec = postForm(t, router, cookie, url.Values{
		formFieldAccountNumbers: {"123\n999"},
		formFieldBankCode:       {"bca"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body = getForm(t, router, cookie)
	assert.Contains(t, body, `role="alert"`)
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Bob")
}

func TestRoutes_FormFlow_EmptyInput(t *testing.T) {
	var calls atomic.Int64
	api := fakeLookupAPI(t, nil, &calls)
	router := newTestRouter(t, api.URL)

	rec := postForm(t, router, nil, url.Values{
		formFieldAccountNumbers: {""},
		formFieldBankCode:       {"bca"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := getForm(t, router, sessionCookie(t, rec))
	assert.NotContains(t, body, `id="results"`)
	assert.NotContains(t, body, `role="alert"`)
	assert.Zero(t, calls.Load())
}

func TestRoutes_API(t *testing.T) {
	var calls atomic.Int64
	api := fakeLookupAPI(t, map[string]string{"123": "Alice", "456": "Bob"}, &calls)
	router := newTestRouter(t, api.URL)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "banks", method: http.MethodGet, path: "/api/banks", wantStatus: http.StatusOK, wantBody: `"code":"bca"`},
		{name: "version", method: http.MethodGet, path: "/api/version/", wantStatus: http.StatusOK, wantBody: "v1.0.0"},
		{
			name: "lookup", method: http.MethodPost, path: "/api/lookup",
			body:       `{"bank_code":"bca","account_numbers":"123\n456"}`,
			wantStatus: http.StatusOK, wantBody: `"accountname":"Alice"`,
		},
		{
			name: "lookup not found", method: http.MethodPost, path: "/api/lookup",
			body:       `{"bank_code":"bca","account_numbers":"123\n999"}`,
			wantStatus: http.StatusBadGateway, wantBody: "account 999",
		},
		{name: "wrong method", method: http.MethodPut, path: "/api/lookup", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRoutes_GzipResponse(t *testing.T) {
	var calls atomic.Int64
	router := newTestRouter(t, fakeLookupAPI(t, nil, &calls).URL)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var got []models.Bank
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, banks.Default().All(), got)
}
