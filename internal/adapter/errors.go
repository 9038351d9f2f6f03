package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("account not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("lookup service internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("lookup service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrInvalidResponse is returned when a 2xx response body cannot be
	// decoded as a lookup record.
	ErrInvalidResponse = errors.New("invalid lookup response")
)
