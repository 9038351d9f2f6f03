// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds listen addresses and timeouts for the HTTP and gRPC
	// servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the remote account lookup API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds concurrency limits and background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BanksFile is an optional path to a JSON file with a list of
	// {"code","name"} objects that replaces the built-in bank list.
	// Env: APP_BANKS_FILE
	BanksFile string `env:"BANKS_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the web form and JSON API,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Empty disables the gRPC listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request,
	// including the whole batch lookup it triggers.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the remote account lookup API.
type Adapter struct {
	// LookupURL is the full URL of the lookup endpoint. bankCode and
	// accountNumber are appended as query parameters.
	// Env: ADAPTER_LOOKUP_URL
	LookupURL string `env:"LOOKUP_URL"`

	// RequestTimeout bounds a single outbound lookup call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds concurrency and background job settings.
type Workers struct {
	// MaxConcurrentLookups caps the number of lookups of one batch that are
	// in flight at the same time. A negative value removes the cap.
	// Env: WORKERS_MAX_CONCURRENT_LOOKUPS
	MaxConcurrentLookups int `env:"MAX_CONCURRENT_LOOKUPS"`

	// SessionTTL is how long an untouched form session is kept in memory.
	// Env: WORKERS_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// JanitorInterval is how often expired form sessions are evicted.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// Built-in defaults used for fields that no source has set.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultServerRequestTimeout = time.Minute
	DefaultLookupURL            = "https://api-rekening.lfourr.com/getBankAccount"
	DefaultLookupTimeout        = 15 * time.Second
	DefaultMaxConcurrentLookups = 8
	DefaultSessionTTL           = 30 * time.Minute
	DefaultJanitorInterval      = time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			LookupURL:      DefaultLookupURL,
			RequestTimeout: DefaultLookupTimeout,
		},
		Workers: Workers{
			MaxConcurrentLookups: DefaultMaxConcurrentLookups,
			SessionTTL:           DefaultSessionTTL,
			JanitorInterval:      DefaultJanitorInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
