package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-account-checker/internal/config"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/utils"
	"github.com/MKhiriev/go-account-checker/models"
)

// query parameter names of the upstream endpoint
const (
	bankCodeParam      = "bankCode"
	accountNumberParam = "accountNumber"
)

type httpLookupAdapter struct {
	client    *utils.HTTPClient
	lookupURL string

	logger *logger.Logger
}

// NewHTTPLookupAdapter constructs an HTTP implementation of [LookupAdapter]
// targeting cfg.LookupURL with a per-request timeout of cfg.RequestTimeout.
//
// Returns an error if the lookup URL is empty or cannot be parsed.
func NewHTTPLookupAdapter(cfg config.ClientAdapter, logger *logger.Logger) (LookupAdapter, error) {
	lookupURL, err := normalizeLookupURL(cfg.LookupURL)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup url: %w", err)
	}

	logger.Debug().Str("lookup_url", lookupURL).Dur("timeout", cfg.RequestTimeout).Msg("lookup adapter created")

	return &httpLookupAdapter{
		client:    utils.NewHTTPClient(cfg.RequestTimeout),
		lookupURL: lookupURL,
		logger:    logger,
	}, nil
}

func normalizeLookupURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// LookupAccount implements [LookupAdapter]. It sends
// GET <lookupURL>?bankCode=<bankCode>&accountNumber=<accountNumber>.
func (h *httpLookupAdapter) LookupAccount(ctx context.Context, bankCode, accountNumber string) (models.LookupResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam(bankCodeParam, bankCode).
		SetQueryParam(accountNumberParam, accountNumber).
		Get(h.lookupURL)
	if err != nil {
		return models.LookupResult{}, fmt.Errorf("lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LookupResult{}, err
	}

	var result models.LookupResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.LookupResult{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	h.logger.Debug().
		Str("bank_code", bankCode).
		Str("account_number", accountNumber).
		Dur("duration", resp.Time()).
		Msg("account resolved")

	return result, nil
}
