// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (PostgreSQL URI for the server, SQLite path for the client)
//	-c/-config json file path with configs
//	-v application version
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-rate-limit requests per client IP per window
//	-rate-limit-window rate limit window (e.g., "1m")
//	-s quote server address used by the client
//	-adapter-timeout client request timeout
//	-sync-interval client background sync interval
//	-mode client mode: tui, random, sync, import, export
//	-file JSON file for import/export
//	-category category filter for the random mode
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quote-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var version string
	var requestTimeout time.Duration
	var rateLimit int
	var rateLimitWindow time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var syncInterval time.Duration
	var mode string
	var file string
	var category string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "v", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per client IP per window")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 1m)")
	fs.StringVar(&adapterAddress, "s", "", "Quote server address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Quote server request timeout")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval")
	fs.StringVar(&mode, "mode", "", "Client mode: tui, random, sync, import, export")
	fs.StringVar(&file, "file", "", "JSON file for import/export")
	fs.StringVar(&category, "category", "", "Category filter for random mode")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			RateLimit:       rateLimit,
			RateLimitWindow: rateLimitWindow,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Client: Client{
			Mode:     mode,
			File:     file,
			Category: category,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. The zero value prints as
// an empty string so an unset flag does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP
// literal; the port must be in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
