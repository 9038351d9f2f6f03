package service

import (
	"github.com/MKhiriev/go-account-checker/internal/adapter"
	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/validators"
	"github.com/MKhiriev/go-account-checker/models"
)

// Services is the service container handed to the transports.
type Services struct {
	LookupService  LookupService
	QueryClient    QueryClient
	AppInfoService AppInfoService
	Banks          *banks.List

	// LookupRequestValidator checks JSON lookup requests against Banks.
	LookupRequestValidator validators.Validator
}

// Options configures [NewServices].
type Options struct {
	// MaxConcurrentLookups caps in-flight lookups per batch; <= 0 is no cap.
	MaxConcurrentLookups int
	// Version overrides the build version reported by AppInfoService.
	Version   string
	BuildInfo models.AppBuildInfo
}

// NewServices wires the lookup service (with batch logging), the query
// client on top of it and the application info service.
func NewServices(lookupAdapter adapter.LookupAdapter, bankList *banks.List, opts Options, logger *logger.Logger) *Services {
	lookup := NewLookupLoggingService(logger).
		Wrap(NewLookupService(lookupAdapter, opts.MaxConcurrentLookups))

	return &Services{
		LookupService:  lookup,
		QueryClient:    NewQueryClient(lookup, logger),
		AppInfoService: NewAppInfoService(opts.Version, opts.BuildInfo),
		Banks:          bankList,

		LookupRequestValidator: validators.NewLookupRequestValidator(bankList),
	}
}
