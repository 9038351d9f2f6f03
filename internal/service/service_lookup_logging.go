package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/models"
)

// lookupLoggingService logs the outcome and duration of every batch.
type lookupLoggingService struct {
	inner  LookupService
	logger *logger.Logger
}

// NewLookupLoggingService returns a wrapper that logs batches with the
// request-scoped logger when one is attached to the context, falling back to
// l otherwise.
func NewLookupLoggingService(l *logger.Logger) LookupServiceWrapper {
	return &lookupLoggingService{logger: l}
}

func (s *lookupLoggingService) Wrap(inner LookupService) LookupService {
	s.inner = inner
	return s
}

func (s *lookupLoggingService) Lookup(ctx context.Context, bankCode string, accountNumbers []string) ([]models.LookupResult, error) {
	log := logger.FromContextOr(ctx, s.logger)

	start := time.Now()
	results, err := s.inner.Lookup(ctx, bankCode, accountNumbers)
	duration := time.Since(start)

	if err != nil {
		log.Warn().Err(err).
			Str("bank_code", bankCode).
			Int("accounts", len(accountNumbers)).
			Dur("duration", duration).
			Msg("batch lookup failed")
		return nil, err
	}

	log.Info().
		Str("bank_code", bankCode).
		Int("accounts", len(accountNumbers)).
		Dur("duration", duration).
		Msg("batch lookup succeeded")

	return results, nil
}
