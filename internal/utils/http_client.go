package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-account-checker"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetQueryParam("q", "1").Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that expects JSON responses and gives
// up on a single request after timeout. A zero timeout disables the limit.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
