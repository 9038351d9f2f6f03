package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds lookup API settings used by the terminal client.
type ClientAdapter struct {
	// LookupURL is the remote lookup endpoint.
	LookupURL string
	// RequestTimeout is the timeout of a single lookup call.
	RequestTimeout time.Duration
}

// ClientWorkers contains client concurrency settings.
type ClientWorkers struct {
	// MaxConcurrentLookups caps in-flight lookups of one batch.
	MaxConcurrentLookups int
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is shown in the TUI footer.
	Version string
	// BanksFile optionally replaces the built-in bank list.
	BanksFile string
	// Adapter contains lookup API address and timeout.
	Adapter ClientAdapter
	// Workers contains concurrency settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Version:   cfg.App.Version,
		BanksFile: cfg.App.BanksFile,
		Adapter: ClientAdapter{
			LookupURL:      cfg.Adapter.LookupURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			MaxConcurrentLookups: cfg.Workers.MaxConcurrentLookups,
		},
	}
}
