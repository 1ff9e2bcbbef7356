// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Intentionally permissive: the structured config feeds both binaries, and
// each binary-specific view ([ClientConfig], the server bootstrap) enforces
// its own required fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Agent.ServerAddress == "" || cfg.Agent.RequestTimeout == 0 {
		return ErrInvalidAgentConfigs
	}

	if cfg.Agent.SyncInterval == 0 {
		return ErrInvalidAgentConfigs
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.BaseDelay <= 0 || cfg.Retry.MaxDelay < cfg.Retry.BaseDelay {
		return ErrInvalidRetryConfigs
	}

	return nil
}
