// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives, or the listener
// fails. Shutdown stops accepting requests and waits for in-flight ones.
type Server interface {
	RunServer() error
	Shutdown()
}
