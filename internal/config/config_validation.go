// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. It runs after defaults have been applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	u, err := url.Parse(cfg.Adapter.LookupURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: lookup url %q must be absolute", ErrInvalidAdapterConfigs, cfg.Adapter.LookupURL)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SessionTTL <= 0 || cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
