// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: durations and limits must not be negative.
// Requirements specific to a binary are checked by [ServerConfig.validate]
// and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.RateLimit < 0 || cfg.Server.RateLimitWindow < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !slices.Contains(ClientModes, cfg.Client.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidClientConfigs, cfg.Client.Mode)
	}
	if (cfg.Client.Mode == ModeImport || cfg.Client.Mode == ModeExport) && cfg.Client.File == "" {
		return fmt.Errorf("%w: mode %q requires a file", ErrInvalidClientConfigs, cfg.Client.Mode)
	}

	return nil
}
