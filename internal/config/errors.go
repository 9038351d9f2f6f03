package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// listen address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing or malformed lookup URL
	// or a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates non-positive session TTL or janitor
	// interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
