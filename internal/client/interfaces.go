// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured mode and blocks until it is done.
	Run(ctx context.Context) error
	// Close releases storages and background resources.
	Close() error
}

// UI is the interactive front end started in [config.ModeTUI].
type UI interface {
	Run(ctx context.Context) error
}
