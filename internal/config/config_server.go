// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Server-side defaults applied when no source sets a value.
const (
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultRateLimitWindow      = time.Minute
	DefaultAppVersion           = "0.0.0"
)

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// GetServerConfig builds and validates the server configuration view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	if serverCfg.App.Version == "" {
		serverCfg.App.Version = DefaultAppVersion
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if serverCfg.Server.RateLimit > 0 && serverCfg.Server.RateLimitWindow == 0 {
		serverCfg.Server.RateLimitWindow = DefaultRateLimitWindow
	}

	return serverCfg
}
